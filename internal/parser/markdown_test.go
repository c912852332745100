package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docview/internal/highlight"
)

func TestMarkdownParser_RendersBlocks(t *testing.T) {
	input := `# Title

Intro text with **bold** words.

## Section A

- item one
- item two
`
	p := &MarkdownParser{Sanitize: true}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Title" {
		t.Errorf("expected title %q, got %q", "Title", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	var tags []string
	for _, block := range doc.Pages[0].Root.Nodes {
		if !block.IsText() {
			tags = append(tags, block.Tag)
		}
	}
	want := []string{"h1", "p", "h2", "ul"}
	if strings.Join(tags, ",") != strings.Join(want, ",") {
		t.Errorf("expected blocks %v, got %v", want, tags)
	}

	text := doc.Pages[0].PlainText()
	if !strings.Contains(text, "Intro text with bold words.") {
		t.Errorf("expected inline markup flattened into text, got %q", text)
	}
}

func TestMarkdownParser_MatchAcrossInlineMarkup(t *testing.T) {
	p := &MarkdownParser{Sanitize: true}
	doc, err := p.Parse(strings.NewReader("Say hel**lo there**."), "split.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := highlight.Highlight(doc.Pages[0].Nodes(), "hello", []highlight.Entry{{Page: 1, Match: 0}}, 0)
	if len(res.Matches) != 1 || res.Matches[0] != "hello" {
		t.Fatalf("expected matches [hello], got %v", res.Matches)
	}
	if len(res.Edits) != 2 {
		t.Errorf("expected the match split over 2 nodes, got %d edits", len(res.Edits))
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", len(doc.Pages))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}
