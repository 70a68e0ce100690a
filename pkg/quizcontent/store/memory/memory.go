// Package memory holds the category collection in process memory. It is
// meant for tests and local development; contents are lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

// Store is an in-memory implementation of the quizcontent.DocumentStore
// interface.
type Store struct {
	mu         sync.RWMutex
	categories []quizcontent.Category
	seeded     bool
}

// New creates a new in-memory document store holding an empty collection
func New() *Store {
	return &Store{
		categories: []quizcontent.Category{},
		seeded:     true,
	}
}

// NewUnseeded creates a store with no document at all: Load fails until
// the first Save, mirroring a filesystem store pointed at a missing file.
func NewUnseeded() *Store {
	return &Store{}
}

// Load returns a copy of the current collection
func (s *Store) Load(ctx context.Context) ([]quizcontent.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.seeded {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: "memory", Err: quizcontent.ErrDocumentMissing}
	}

	// Copies on the way out so callers cannot mutate the stored document.
	return copyCategories(s.categories), nil
}

// Save replaces the stored collection with a copy of categories
func (s *Store) Save(ctx context.Context, categories []quizcontent.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = copyCategories(categories)
	s.seeded = true
	return nil
}

func copyCategories(categories []quizcontent.Category) []quizcontent.Category {
	out := make([]quizcontent.Category, 0, len(categories))
	for _, c := range categories {
		copied := c
		if c.Questions != nil {
			copied.Questions = append([]string(nil), c.Questions...)
		}
		if c.RiveFile != nil {
			riveFile := *c.RiveFile
			copied.RiveFile = &riveFile
		}
		if c.StateMachine != nil {
			stateMachine := *c.StateMachine
			copied.StateMachine = &stateMachine
		}
		out = append(out, copied)
	}
	return out
}
