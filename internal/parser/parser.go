package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docview/internal/doctree"
)

// Parser converts raw document bytes into a paged Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.Document, error)
}

// Options tunes parser behavior.
type Options struct {
	PageParagraphs    int  // paragraphs per page for plain text
	CSVRowsPerPage    int  // data rows per page for CSV
	SanitizeHTML      bool // run HTML through the UGC policy before building the tree
	FallbackPdftotext bool
}

// DefaultOptions returns the defaults used when config leaves a value unset.
func DefaultOptions() Options {
	return Options{
		PageParagraphs: 50,
		CSVRowsPerPage: 20,
		SanitizeHTML:   true,
	}
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	defaults := DefaultOptions()
	if opts.PageParagraphs <= 0 {
		opts.PageParagraphs = defaults.PageParagraphs
	}
	if opts.CSVRowsPerPage <= 0 {
		opts.CSVRowsPerPage = defaults.CSVRowsPerPage
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{PageParagraphs: opts.PageParagraphs}, nil
	case ".md", ".markdown":
		return &MarkdownParser{Sanitize: opts.SanitizeHTML}, nil
	case ".csv":
		return &CSVParser{RowsPerPage: opts.CSVRowsPerPage}, nil
	case ".html", ".htm":
		return &HTMLParser{Sanitize: opts.SanitizeHTML}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.FallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func titleFromFilename(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
