package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docview/internal/doctree"
)

// CSVParser handles CSV files. Each page is a table repeating the header row.
type CSVParser struct {
	RowsPerPage int
}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &doctree.Document{
		Title:    titleFromFilename(filename),
		Filename: filename,
	}

	if len(records) == 0 {
		return doc, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	batchSize := p.RowsPerPage
	if batchSize <= 0 {
		batchSize = 20
	}

	if len(dataRows) == 0 {
		doc.Pages = []*doctree.Page{newPage(1, csvTable(headers, nil))}
		return doc, nil
	}
	for i := 0; i < len(dataRows); i += batchSize {
		end := min(i+batchSize, len(dataRows))
		doc.Pages = append(doc.Pages, newPage(len(doc.Pages)+1, csvTable(headers, dataRows[i:end])))
	}

	return doc, nil
}

func csvTable(headers []string, rows [][]string) *doctree.Element {
	head := doctree.NewElement("tr")
	for _, h := range headers {
		head.Append(doctree.NewElement("th", doctree.NewText(normalize(h))))
	}

	body := doctree.NewElement("tbody")
	for _, row := range rows {
		tr := doctree.NewElement("tr")
		for _, cell := range row {
			tr.Append(doctree.NewElement("td", doctree.NewText(normalize(cell))))
		}
		body.Append(tr)
	}

	return doctree.NewElement("table", doctree.NewElement("thead", head), body)
}
