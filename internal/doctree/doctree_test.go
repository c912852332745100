package doctree

import (
	"strings"
	"testing"

	"github.com/dgallion1/docview/internal/highlight"
	"golang.org/x/net/html"
)

func samplePage() *Page {
	p := &Element{Tag: "p", Attr: []html.Attribute{{Key: "id", Val: "intro"}}}
	p.Append(NewText("The "), NewElement("b", NewText("cat")), NewText(" sat & the cat ran."))
	return &Page{Number: 1, Root: NewElement("div", p)}
}

func TestElement_ImplementsNode(t *testing.T) {
	page := samplePage()
	flat := highlight.Flatten(page.Nodes())
	// div, p, "The ", b, "cat", " sat & the cat ran."
	if len(flat) != 6 {
		t.Fatalf("expected 6 flattened nodes, got %d", len(flat))
	}
	if flat[1].ID() != "intro" {
		t.Errorf("expected id %q, got %q", "intro", flat[1].ID())
	}
	if got := highlight.Text(flat); got != "The cat sat & the cat ran." {
		t.Errorf("unexpected text %q", got)
	}
}

func TestPlainText(t *testing.T) {
	doc := &Document{Pages: []*Page{samplePage(), {Number: 2, Root: NewElement("div", NewText("page two"))}}}
	want := "The cat sat & the cat ran.\fpage two"
	if got := doc.PlainText(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if doc.Page(2) == nil || doc.Page(3) != nil {
		t.Error("expected lookup by page number")
	}
}

func TestRender_NoEdits(t *testing.T) {
	var buf strings.Builder
	if err := Render(&buf, samplePage().Root, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><p id="intro">The <b>cat</b> sat &amp; the cat ran.</p></div>`
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRender_AppliesEdits(t *testing.T) {
	page := samplePage()
	res := highlight.Highlight(page.Nodes(), "cat", []highlight.Entry{{Page: 1, Match: 0}, {Page: 1, Match: 1}}, 1)

	var buf strings.Builder
	if err := Render(&buf, page.Root, res.Edits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><p id="intro">The <b><mark class="search-hit" data-match="0" id="search-hit-0">cat</mark></b>` +
		` sat &amp; the <mark class="search-hit active" data-match="1" id="search-hit-1">cat</mark> ran.</p></div>`
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRender_NoMatchIsByteIdentical(t *testing.T) {
	page := samplePage()
	var before, after strings.Builder
	if err := Render(&before, page.Root, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := highlight.Highlight(page.Nodes(), "dog", []highlight.Entry{{Page: 1, Match: 0}}, 0)
	if err := Render(&after, page.Root, res.Edits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before.String() != after.String() {
		t.Errorf("expected unchanged output, got %q", after.String())
	}
}
