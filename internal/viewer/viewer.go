// Package viewer coordinates search across the pages of a document: it
// numbers matches globally, maps them to pages, steps the active match and
// renders one page at a time through the highlight engine.
package viewer

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/dgallion1/docview/internal/doctree"
	"github.com/dgallion1/docview/internal/highlight"
)

// ErrPageNotFound is returned for a page number the document does not have.
var ErrPageNotFound = errors.New("page not found")

// Results is the match index of one query over one document.
type Results struct {
	Query   string            `json:"query"`
	Total   int               `json:"total"`
	Entries []highlight.Entry `json:"-"`
}

// PageHits lists the global match ordinals shown on one page.
type PageHits struct {
	Page    int   `json:"page"`
	Matches []int `json:"matches"`
}

// PageView is a rendered page ready to display.
type PageView struct {
	Page     int      `json:"page"`
	HTML     string   `json:"html"`
	Matches  []string `json:"matches"`
	ActiveID string   `json:"active_id,omitempty"`
	Total    int      `json:"total"`
}

// NormalizeQuery puts a query in the same normal form as parsed text.
func NormalizeQuery(q string) string {
	return norm.NFC.String(q)
}

// Index locates query on every page of doc and numbers the matches in
// reading order.
func Index(doc *doctree.Document, query string) Results {
	q := NormalizeQuery(query)
	res := Results{Query: q}
	if q == "" || doc == nil {
		return res
	}
	for _, p := range doc.Pages {
		n := len(highlight.Locate(highlight.Corpus(highlight.Flatten(p.Nodes())), q))
		for i := 0; i < n; i++ {
			res.Entries = append(res.Entries, highlight.Entry{Page: p.Number, Match: res.Total})
			res.Total++
		}
	}
	return res
}

// ForPage returns the entries displayed on the given page, in order.
func (r Results) ForPage(page int) []highlight.Entry {
	var out []highlight.Entry
	for _, e := range r.Entries {
		if e.Page == page {
			out = append(out, e)
		}
	}
	return out
}

// PageOf returns the page that displays match.
func (r Results) PageOf(match int) (int, bool) {
	if match < 0 || match >= len(r.Entries) {
		return 0, false
	}
	return r.Entries[match].Page, true
}

// Pages groups the matches by page, in page order.
func (r Results) Pages() []PageHits {
	out := []PageHits{}
	for _, e := range r.Entries {
		if n := len(out); n > 0 && out[n-1].Page == e.Page {
			out[n-1].Matches = append(out[n-1].Matches, e.Match)
			continue
		}
		out = append(out, PageHits{Page: e.Page, Matches: []int{e.Match}})
	}
	return out
}

// Step moves the active match by delta, wrapping at both ends. An active
// index outside the results restarts at the first match going forward or the
// last going backward. Step returns -1 when there are no matches.
func (r Results) Step(active, delta int) int {
	if r.Total == 0 {
		return -1
	}
	if active < 0 || active >= r.Total {
		if delta >= 0 {
			return 0
		}
		return r.Total - 1
	}
	next := (active + delta) % r.Total
	if next < 0 {
		next += r.Total
	}
	return next
}

// RenderPage highlights the page's matches and renders the page as HTML.
func RenderPage(doc *doctree.Document, number int, results Results, active int) (PageView, error) {
	page := doc.Page(number)
	if page == nil {
		return PageView{}, fmt.Errorf("page %d: %w", number, ErrPageNotFound)
	}

	hl := highlight.Highlight(page.Nodes(), results.Query, results.ForPage(number), active)

	var buf bytes.Buffer
	if err := doctree.Render(&buf, page.Root, hl.Edits); err != nil {
		return PageView{}, fmt.Errorf("render page %d: %w", number, err)
	}

	matches := hl.Matches
	if matches == nil {
		matches = []string{}
	}
	return PageView{
		Page:     number,
		HTML:     buf.String(),
		Matches:  matches,
		ActiveID: hl.ActiveID,
		Total:    results.Total,
	}, nil
}
