package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dgallion1/docview/internal/doctree"
)

// ErrNotFound is returned when a document ID is unknown or expired.
var ErrNotFound = errors.New("document not found")

type entry struct {
	doc      *doctree.Document
	accessed time.Time
}

// Store is a thread-safe in-memory document registry with TTL eviction.
// A document's TTL restarts every time it is read.
type Store struct {
	mu   sync.Mutex
	docs map[string]*entry
	ttl  time.Duration
}

func New(ttl time.Duration) *Store {
	return &Store{
		docs: make(map[string]*entry),
		ttl:  ttl,
	}
}

func (s *Store) Put(doc *doctree.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = &entry{doc: doc, accessed: time.Now()}
}

func (s *Store) Get(id string) (*doctree.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.accessed = time.Now()
	return e.doc, nil
}

// List returns all documents, oldest first.
func (s *Store) List() []*doctree.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]*doctree.Document, 0, len(s.docs))
	for _, e := range s.docs {
		docs = append(docs, e.doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// FindByHash returns the document with the given content hash, if any.
func (s *Store) FindByHash(hash string) (*doctree.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.docs {
		if e.doc.ContentHash == hash {
			return e.doc, true
		}
	}
	return nil, false
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// Cleanup removes documents not read within the TTL.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, e := range s.docs {
		if now.Sub(e.accessed) > s.ttl {
			delete(s.docs, id)
			removed++
		}
	}
	return removed
}
