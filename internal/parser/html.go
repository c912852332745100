package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docview/internal/doctree"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser handles HTML files. The body becomes a single page.
type HTMLParser struct {
	Sanitize bool
}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}

	doc := &doctree.Document{
		Title:    titleFromFilename(filename),
		Filename: filename,
	}

	raw, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	// Extract title from <title> before sanitizing drops the head.
	if title := findTitle(raw); title != "" {
		doc.Title = title
	}

	root, err := buildHTMLPage(src, p.Sanitize)
	if err != nil {
		return nil, err
	}
	if len(root.Nodes) > 0 {
		doc.Pages = []*doctree.Page{{Number: 1, Root: root}}
	}
	return doc, nil
}

// buildHTMLPage parses markup and converts its body into a page element.
func buildHTMLPage(src []byte, sanitize bool) (*doctree.Element, error) {
	if sanitize {
		src = bluemonday.UGCPolicy().SanitizeBytes(src)
	}
	n, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := doctree.NewElement(PageTag)
	body := findBody(n)
	if body == nil {
		body = n
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if el := convertNode(c); el != nil {
			root.Append(el)
		}
	}
	return root, nil
}

// convertNode maps an html.Node subtree to Elements. Comments and
// non-rendered elements are dropped.
func convertNode(n *html.Node) *doctree.Element {
	switch n.Type {
	case html.TextNode:
		return doctree.NewText(normalize(n.Data))
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head:
			return nil
		}
		el := &doctree.Element{Tag: n.Data, Attr: n.Attr}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convertNode(c); child != nil {
				el.Append(child)
			}
		}
		return el
	}
	return nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		return normalize(textContent(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
