package quizcontent

import (
	"context"
)

// DocumentStore defines the interface for the backing document holding the
// full category collection. Implementations read and replace the document
// wholesale; there are no incremental writes.
type DocumentStore interface {
	// Load reads and parses the entire collection. A missing, unreadable
	// or malformed document fails with a *StoreError (Op = StoreOpLoad).
	Load(ctx context.Context) ([]Category, error)

	// Save serializes the entire collection and overwrites the document,
	// atomically replacing prior contents from the caller's point of
	// view. Fails with a *StoreError (Op = StoreOpSave).
	Save(ctx context.Context, categories []Category) error
}

// EventSink defines the interface for mutation event handling
type EventSink interface {
	// CategoryCreated is fired after a category is created and persisted
	CategoryCreated(ctx context.Context, category *Category) error

	// CategoryUpdated is fired after a category is updated and persisted
	CategoryUpdated(ctx context.Context, category *Category) error

	// CategoryDeleted is fired after categories with the given title are
	// deleted and the collection is persisted
	CategoryDeleted(ctx context.Context, title string) error
}
