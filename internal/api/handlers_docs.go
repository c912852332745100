package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/docview/internal/doctree"
	"github.com/dgallion1/docview/internal/store"
	"github.com/go-chi/chi/v5"
)

type documentInfo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"content_hash,omitempty"`
	Pages       int       `json:"pages"`
	CreatedAt   time.Time `json:"created_at"`
}

func infoOf(doc *doctree.Document) documentInfo {
	return documentInfo{
		ID:          doc.ID,
		Title:       doc.Title,
		Filename:    doc.Filename,
		ContentHash: doc.ContentHash,
		Pages:       len(doc.Pages),
		CreatedAt:   doc.CreatedAt,
	}
}

// document resolves the {docID} URL parameter, writing a 404 when unknown.
func (s *Server) document(w http.ResponseWriter, r *http.Request) (*doctree.Document, bool) {
	doc, err := s.docs.Get(chi.URLParam(r, "docID"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, "document not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return doc, true
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.docs.List()
	out := make([]documentInfo, 0, len(docs))
	for _, d := range docs {
		out = append(out, infoOf(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, infoOf(doc))
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if err := s.docs.Delete(docID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("document deleted", "doc_id", docID)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": docID})
}
