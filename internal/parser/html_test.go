package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docview/internal/doctree"
)

func TestHTMLParser_BodyAndTitle(t *testing.T) {
	input := `<html><head><title>Quarterly Report</title><style>p{color:red}</style></head>
<body><p id="lead">Revenue <em>grew</em> fast.</p><script>alert(1)</script></body></html>`

	p := &HTMLParser{Sanitize: false}
	doc, err := p.Parse(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Quarterly Report" {
		t.Errorf("expected title %q, got %q", "Quarterly Report", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	page := doc.Pages[0]
	if got := page.PlainText(); got != "Revenue grew fast." {
		t.Errorf("expected script text dropped, got %q", got)
	}
	lead := page.Root.Nodes[0]
	if lead.ID() != "lead" {
		t.Errorf("expected id attribute kept, got %q", lead.ID())
	}
}

func TestHTMLParser_SanitizeStripsHandlers(t *testing.T) {
	input := `<body><p onclick="steal()">Hello <a href="javascript:x()">there</a></p><iframe src="x"></iframe></body>`

	p := &HTMLParser{Sanitize: true}
	doc, err := p.Parse(strings.NewReader(input), "unsafe.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf strings.Builder
	if err := doctree.Render(&buf, doc.Pages[0].Root, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, bad := range []string{"onclick", "javascript:", "iframe"} {
		if strings.Contains(out, bad) {
			t.Errorf("expected %q removed, got %q", bad, out)
		}
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "there") {
		t.Errorf("expected text kept, got %q", out)
	}
}

func TestHTMLParser_FilenameTitleFallback(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<p>x</p>"), "page.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "page" {
		t.Errorf("expected title %q, got %q", "page", doc.Title)
	}
}

func TestCSVParser_PagesRepeatHeaders(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("name,city\n")
	for i := 0; i < 5; i++ {
		sb.WriteString("alice,paris\n")
	}

	p := &CSVParser{RowsPerPage: 2}
	doc, err := p.Parse(strings.NewReader(sb.String()), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	for _, page := range doc.Pages {
		if !strings.HasPrefix(page.PlainText(), "namecity") {
			t.Errorf("page %d: expected header row first, got %q", page.Number, page.PlainText())
		}
	}
	if got := strings.Count(doc.Pages[2].PlainText(), "alice"); got != 1 {
		t.Errorf("expected 1 row on last page, got %d", got)
	}
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader("a,b\n"), "h.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("expected 1 page, got %d", len(doc.Pages))
	}
}
