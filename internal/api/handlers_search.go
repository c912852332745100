package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/docview/internal/highlight"
	"github.com/dgallion1/docview/internal/viewer"
	"github.com/go-chi/chi/v5"
)

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	res := viewer.Index(doc, r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string]any{
		"query": res.Query,
		"total": res.Total,
		"pages": res.Pages(),
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	number, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		jsonError(w, "page must be an integer", http.StatusBadRequest)
		return
	}
	active, err := queryInt(r, "active", 0)
	if err != nil {
		jsonError(w, "active must be an integer", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res := viewer.Index(doc, r.URL.Query().Get("q"))
	view, err := viewer.RenderPage(doc, number, res, active)
	if err != nil {
		if errors.Is(err, viewer.ErrPageNotFound) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		s.log.Error("render failed", "doc_id", doc.ID, "page", number, "error", err)
		jsonError(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.renderStats.Since(start)

	writeJSON(w, http.StatusOK, view)
}

// handleActive moves the active match by step and reports the page that
// displays it, so the client can load that page and scroll the marker into
// view.
func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	active, err := queryInt(r, "active", -1)
	if err != nil {
		jsonError(w, "active must be an integer", http.StatusBadRequest)
		return
	}
	step, err := queryInt(r, "step", 1)
	if err != nil {
		jsonError(w, "step must be an integer", http.StatusBadRequest)
		return
	}

	res := viewer.Index(doc, r.URL.Query().Get("q"))
	next := res.Step(active, step)
	if next < 0 {
		writeJSON(w, http.StatusOK, map[string]any{"active": -1, "page": 0, "total": 0})
		return
	}
	page, _ := res.PageOf(next)
	writeJSON(w, http.StatusOK, map[string]any{
		"active":    next,
		"page":      page,
		"total":     res.Total,
		"active_id": highlight.MarkerID(next),
	})
}
