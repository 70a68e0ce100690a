// Package fs persists the category collection as a JSON document on disk.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

// Store is a filesystem implementation of the quizcontent.DocumentStore
// interface. The whole document is read on every Load and overwritten on
// every Save. The overwrite is not staged through a temporary file; a crash
// mid-write can corrupt the document (accepted for single-writer admin use).
type Store struct {
	path string
}

// Config options for the filesystem store
type Config struct {
	Path string // Path of the backing JSON document
}

// New creates a new filesystem document store. The parent directory is
// created if missing; the document itself is not, so a Load against a
// fresh path fails until the first Save.
func New(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, errors.New("document path is required")
	}

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create document directory: %w", err)
		}
	}

	return &Store{path: config.Path}, nil
}

// Load reads and parses the backing document
func (s *Store) Load(ctx context.Context) ([]quizcontent.Category, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: s.path, Err: err}
	}

	var categories []quizcontent.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: s.path, Err: err}
	}
	return categories, nil
}

// Save serializes the full collection and overwrites the backing document
func (s *Store) Save(ctx context.Context, categories []quizcontent.Category) error {
	if categories == nil {
		categories = []quizcontent.Category{}
	}

	data, err := json.MarshalIndent(categories, "", "  ")
	if err != nil {
		return &quizcontent.StoreError{Op: quizcontent.StoreOpSave, Path: s.path, Err: err}
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return &quizcontent.StoreError{Op: quizcontent.StoreOpSave, Path: s.path, Err: err}
	}
	return nil
}
