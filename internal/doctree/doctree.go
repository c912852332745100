package doctree

import (
	"strings"
	"time"

	"github.com/dgallion1/docview/internal/highlight"
	"golang.org/x/net/html"
)

// TextTag marks an Element that is a text leaf rather than a markup element.
const TextTag = "#text"

// Document is a parsed, viewable document split into pages.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Pages       []*Page   `json:"-"`
}

// Page is one displayable unit of a document.
type Page struct {
	Number int      // 1-based
	Root   *Element // page container
}

// Element is a node of a page's element tree. Text leaves carry Content and
// have no children; markup elements carry Tag/Attr and children.
type Element struct {
	Tag     string
	Attr    []html.Attribute
	Content string
	Nodes   []*Element
}

// NewText returns a text leaf.
func NewText(s string) *Element {
	return &Element{Tag: TextTag, Content: s}
}

// NewElement returns a markup element with the given children.
func NewElement(tag string, children ...*Element) *Element {
	return &Element{Tag: tag, Nodes: children}
}

// IsText reports whether e is a text leaf.
func (e *Element) IsText() bool { return e.Tag == TextTag }

// Append adds children and returns e.
func (e *Element) Append(children ...*Element) *Element {
	e.Nodes = append(e.Nodes, children...)
	return e
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	for _, a := range e.Attr {
		if a.Namespace == "" && a.Key == "id" {
			return a.Val
		}
	}
	return ""
}

// Text returns the text carried directly by e.
func (e *Element) Text() string { return e.Content }

// Children adapts the element children to highlight.Node.
func (e *Element) Children() []highlight.Node {
	if len(e.Nodes) == 0 {
		return nil
	}
	out := make([]highlight.Node, len(e.Nodes))
	for i, c := range e.Nodes {
		out[i] = c
	}
	return out
}

// PlainText returns the visible text under e in document order.
func (e *Element) PlainText() string {
	var sb strings.Builder
	var walk func(*Element)
	walk = func(n *Element) {
		sb.WriteString(n.Content)
		for _, c := range n.Nodes {
			walk(c)
		}
	}
	walk(e)
	return sb.String()
}

// Nodes returns the page root as the engine's input.
func (p *Page) Nodes() []highlight.Node {
	if p.Root == nil {
		return nil
	}
	return []highlight.Node{p.Root}
}

// PlainText returns the visible text of the page.
func (p *Page) PlainText() string {
	if p.Root == nil {
		return ""
	}
	return p.Root.PlainText()
}

// Page returns the page with the given 1-based number, or nil.
func (d *Document) Page(number int) *Page {
	for _, p := range d.Pages {
		if p.Number == number {
			return p
		}
	}
	return nil
}

// PlainText joins the text of all pages with form feeds.
func (d *Document) PlainText() string {
	parts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		parts = append(parts, p.PlainText())
	}
	return strings.Join(parts, "\f")
}
