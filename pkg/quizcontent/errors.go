package quizcontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrCategoryNotFound indicates a lookup, update or delete matched no category
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDocumentMissing indicates the backing document does not exist yet
	ErrDocumentMissing = errors.New("backing document missing")
)

// Store operation names used in StoreError.
const (
	StoreOpLoad = "load"
	StoreOpSave = "save"
)

// StoreError represents a failure reading or writing the backing document.
// Op is StoreOpLoad for read/parse failures and StoreOpSave for write
// failures; Path identifies the document (file path, table, object key).
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err wraps a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
