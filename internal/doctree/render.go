package doctree

import (
	"fmt"
	"io"

	"github.com/dgallion1/docview/internal/highlight"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes root as HTML. Text leaves named by an edit (indexed in the
// same pre-order as highlight.Flatten) are written as the edit's markup.
func Render(w io.Writer, root *Element, edits []highlight.Edit) error {
	if root == nil {
		return nil
	}
	markup := make(map[int]string, len(edits))
	for _, e := range edits {
		markup[e.Node] = e.Markup
	}

	index := 0
	var build func(*Element) *html.Node
	build = func(e *Element) *html.Node {
		i := index
		index++
		if e.IsText() {
			if m, ok := markup[i]; ok {
				return &html.Node{Type: html.RawNode, Data: m}
			}
			return &html.Node{Type: html.TextNode, Data: e.Content}
		}
		n := &html.Node{
			Type:     html.ElementNode,
			Data:     e.Tag,
			DataAtom: atom.Lookup([]byte(e.Tag)),
			Attr:     e.Attr,
		}
		for _, c := range e.Nodes {
			n.AppendChild(build(c))
		}
		return n
	}

	if err := html.Render(w, build(root)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
