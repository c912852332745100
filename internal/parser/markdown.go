package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/docview/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. The rendered HTML
// goes through the same tree builder as HTML uploads.
type MarkdownParser struct {
	Sanitize bool
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	doc := &doctree.Document{
		Title:    titleFromFilename(filename),
		Filename: filename,
	}

	// A leading h1 names the document.
	astDoc := md.Parser().Parse(text.NewReader(src))
	if h, ok := astDoc.FirstChild().(*ast.Heading); ok && h.Level == 1 {
		if t := headingText(h, src); t != "" {
			doc.Title = normalize(t)
		}
	}

	var out bytes.Buffer
	if err := md.Renderer().Render(&out, src, astDoc); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	root, err := buildHTMLPage(out.Bytes(), p.Sanitize)
	if err != nil {
		return nil, err
	}
	if len(root.Nodes) > 0 {
		doc.Pages = []*doctree.Page{{Number: 1, Root: root}}
	}
	return doc, nil
}

// headingText gets the inline text of a goldmark heading.
func headingText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			continue
		}
		buf.WriteString(headingText(c, src))
	}
	return buf.String()
}
