package viewer

import (
	"errors"
	"testing"

	"github.com/dgallion1/docview/internal/doctree"
)

func sampleDoc() *doctree.Document {
	p1 := doctree.NewElement("p", doctree.NewText("The cat sat."))
	p2 := doctree.NewElement("p",
		doctree.NewText("Cat and "),
		doctree.NewElement("b", doctree.NewText("ca")),
		doctree.NewText("t"),
	)
	p3 := doctree.NewElement("p", doctree.NewText("No animals here."))
	return &doctree.Document{
		ID: "doc",
		Pages: []*doctree.Page{
			{Number: 1, Root: p1},
			{Number: 2, Root: p2},
			{Number: 3, Root: p3},
		},
	}
}

func TestIndex_NumbersMatchesAcrossPages(t *testing.T) {
	res := Index(sampleDoc(), "CAT")
	if res.Total != 3 {
		t.Fatalf("expected 3 matches, got %d", res.Total)
	}
	want := []struct{ page, match int }{{1, 0}, {2, 1}, {2, 2}}
	for i, w := range want {
		if res.Entries[i].Page != w.page || res.Entries[i].Match != w.match {
			t.Errorf("entry %d: expected page %d match %d, got %+v", i, w.page, w.match, res.Entries[i])
		}
	}

	hits := res.Pages()
	if len(hits) != 2 || hits[0].Page != 1 || hits[1].Page != 2 {
		t.Fatalf("expected hits on pages 1 and 2, got %+v", hits)
	}
	if len(hits[1].Matches) != 2 {
		t.Errorf("expected 2 matches on page 2, got %v", hits[1].Matches)
	}
}

func TestIndex_EmptyQuery(t *testing.T) {
	res := Index(sampleDoc(), "")
	if res.Total != 0 || len(res.Entries) != 0 {
		t.Errorf("expected no matches, got %+v", res)
	}
	if hits := res.Pages(); hits == nil || len(hits) != 0 {
		t.Errorf("expected empty non-nil page list, got %#v", hits)
	}
}

func TestIndex_NormalizesQuery(t *testing.T) {
	doc := &doctree.Document{Pages: []*doctree.Page{
		{Number: 1, Root: doctree.NewElement("p", doctree.NewText("caf\u00e9 au lait"))},
	}}
	res := Index(doc, "cafe\u0301")
	if res.Total != 1 {
		t.Errorf("expected decomposed query to match composed text, got %d matches", res.Total)
	}
}

func TestResults_PageOf(t *testing.T) {
	res := Index(sampleDoc(), "cat")
	if page, ok := res.PageOf(2); !ok || page != 2 {
		t.Errorf("expected match 2 on page 2, got %d %v", page, ok)
	}
	if _, ok := res.PageOf(3); ok {
		t.Error("expected out-of-range match to be unknown")
	}
	if _, ok := res.PageOf(-1); ok {
		t.Error("expected negative match to be unknown")
	}
}

func TestResults_Step(t *testing.T) {
	res := Index(sampleDoc(), "cat")
	tests := []struct {
		name          string
		active, delta int
		want          int
	}{
		{"next", 0, 1, 1},
		{"wrap forward", 2, 1, 0},
		{"previous", 1, -1, 0},
		{"wrap backward", 0, -1, 2},
		{"stay", 1, 0, 1},
		{"large jump", 0, 7, 1},
		{"unset forward", -1, 1, 0},
		{"unset backward", -1, -1, 2},
		{"stale index", 9, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := res.Step(tt.active, tt.delta); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}

	if got := (Results{}).Step(0, 1); got != -1 {
		t.Errorf("expected -1 with no matches, got %d", got)
	}
}

func TestRenderPage_HighlightsActiveMatch(t *testing.T) {
	doc := sampleDoc()
	res := Index(doc, "cat")

	view, err := RenderPage(doc, 2, res, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<p><mark class="search-hit" data-match="1" id="search-hit-1">Cat</mark> and ` +
		`<b><mark class="search-hit active" data-match="2" id="search-hit-2">ca</mark></b>` +
		`<mark class="search-hit active" data-match="2">t</mark></p>`
	if view.HTML != want {
		t.Errorf("unexpected html:\n got %s\nwant %s", view.HTML, want)
	}
	if view.ActiveID != "search-hit-2" {
		t.Errorf("expected active id search-hit-2, got %q", view.ActiveID)
	}
	if len(view.Matches) != 2 || view.Matches[0] != "Cat" || view.Matches[1] != "cat" {
		t.Errorf("expected matches [Cat cat], got %v", view.Matches)
	}
	if view.Total != 3 {
		t.Errorf("expected total 3, got %d", view.Total)
	}
}

func TestRenderPage_ActiveOnOtherPage(t *testing.T) {
	doc := sampleDoc()
	res := Index(doc, "cat")

	view, err := RenderPage(doc, 1, res, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ActiveID != "" {
		t.Errorf("expected no active id, got %q", view.ActiveID)
	}
	want := `<p>The <mark class="search-hit" data-match="0" id="search-hit-0">cat</mark> sat.</p>`
	if view.HTML != want {
		t.Errorf("unexpected html:\n got %s\nwant %s", view.HTML, want)
	}
}

func TestRenderPage_NoMatches(t *testing.T) {
	doc := sampleDoc()
	view, err := RenderPage(doc, 3, Index(doc, "cat"), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.HTML != "<p>No animals here.</p>" {
		t.Errorf("expected untouched page, got %s", view.HTML)
	}
	if view.Matches == nil || len(view.Matches) != 0 {
		t.Errorf("expected empty non-nil matches, got %#v", view.Matches)
	}
}

func TestRenderPage_UnknownPage(t *testing.T) {
	doc := sampleDoc()
	_, err := RenderPage(doc, 42, Index(doc, "cat"), 0)
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
}
