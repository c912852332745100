package parser

import (
	"strings"

	"github.com/dgallion1/docview/internal/doctree"
	"golang.org/x/text/unicode/norm"
)

// PageTag is the container element of every page.
const PageTag = "section"

// normalize puts text in NFC so composed and decomposed input search alike.
func normalize(s string) string {
	return norm.NFC.String(s)
}

func paragraph(text string) *doctree.Element {
	return doctree.NewElement("p", doctree.NewText(normalize(text)))
}

func heading(level int, text string) *doctree.Element {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	tag := "h" + string(rune('0'+level))
	return doctree.NewElement(tag, doctree.NewText(normalize(text)))
}

func newPage(number int, children ...*doctree.Element) *doctree.Page {
	root := doctree.NewElement(PageTag, children...)
	return &doctree.Page{Number: number, Root: root}
}

// paginate groups blocks into pages of at most perPage blocks.
func paginate(blocks []*doctree.Element, perPage int) []*doctree.Page {
	if perPage <= 0 {
		perPage = len(blocks)
	}
	var pages []*doctree.Page
	for i := 0; i < len(blocks); i += perPage {
		end := min(i+perPage, len(blocks))
		pages = append(pages, newPage(len(pages)+1, blocks[i:end]...))
	}
	return pages
}

// splitParagraphs splits on blank lines, keeping single newlines inside a
// paragraph.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(strings.TrimRight(line, "\r"))
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return paragraphs
}
