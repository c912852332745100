package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/dgallion1/docview/internal/parser"
	"github.com/dgallion1/docview/internal/store"
)

// Worker processes a single document job.
type Worker struct {
	docs *store.Store
	log  *slog.Logger
	opts parser.Options
}

func NewWorker(docs *store.Store, log *slog.Logger, opts parser.Options) *Worker {
	return &Worker{
		docs: docs,
		log:  log,
		opts: opts,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "queued")
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	start := time.Now()
	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	job.releaseFileData()
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}

	// Identify the document by its visible text.
	text := doc.PlainText()
	hash := ContentHashHex([]byte(text))
	docID := job.DocID
	if docID == "" {
		docID = hash[:16]
	}
	doc.ID = docID
	doc.ContentHash = hash
	doc.CreatedAt = job.CreatedAt
	job.SetParsed(docID, hash, len(doc.Pages), utf8.RuneCountInString(text))
	log.Info("parsed document", "doc_id", docID, "pages", len(doc.Pages), "duration_ms", time.Since(start).Milliseconds())

	if len(doc.Pages) == 0 {
		log.Warn("no pages produced")
		job.AddError("no viewable content")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 1.5: Dedup check
	if !job.Force {
		if existing, ok := w.docs.FindByHash(hash); ok {
			log.Info("duplicate document, skipping", "existing_doc_id", existing.ID)
			job.SetParsed(existing.ID, hash, len(existing.Pages), utf8.RuneCountInString(text))
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		}
	}

	// Phase 2: Store
	job.SetStatus(StatusStoring, "storing")
	w.docs.Put(doc)
	log.Info("document stored", "doc_id", docID)

	job.SetStatus(StatusCompleted, "done")
}
