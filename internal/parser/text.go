package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docview/internal/doctree"
)

// TextParser handles plain text files. Each paragraph becomes a <p> and
// pages hold PageParagraphs paragraphs.
type TextParser struct {
	PageParagraphs int
}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &doctree.Document{
		Title:    titleFromFilename(filename),
		Filename: filename,
	}

	blocks := make([]*doctree.Element, 0, len(paragraphs))
	for _, para := range paragraphs {
		blocks = append(blocks, paragraph(para))
	}
	doc.Pages = paginate(blocks, p.PageParagraphs)

	return doc, nil
}
