// Package postgres persists the category collection as a single jsonb
// document row, keeping the load-everything/save-everything contract while
// letting deployments reuse an existing database.
package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

// The whole collection lives in one row; there is deliberately no
// per-category table, matching the document semantics of the fs store.
const documentID = 1

// Store is a Postgres implementation of the quizcontent.DocumentStore
// interface.
type Store struct {
	pool *pgxpool.Pool
}

// NewWithPool creates a new Postgres document store using an existing pool
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the document table if it does not exist. The
// document row itself is not seeded; Load fails until the first Save.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS category_document (
			id integer PRIMARY KEY,
			doc jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	return err
}

// Load reads and parses the document row
func (s *Store) Load(ctx context.Context) ([]quizcontent.Category, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM category_document WHERE id = $1`, documentID,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: "category_document", Err: quizcontent.ErrDocumentMissing}
	}
	if err != nil {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: "category_document", Err: err}
	}

	var categories []quizcontent.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, &quizcontent.StoreError{Op: quizcontent.StoreOpLoad, Path: "category_document", Err: err}
	}
	return categories, nil
}

// Save serializes the full collection and upserts the document row
func (s *Store) Save(ctx context.Context, categories []quizcontent.Category) error {
	if categories == nil {
		categories = []quizcontent.Category{}
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return &quizcontent.StoreError{Op: quizcontent.StoreOpSave, Path: "category_document", Err: err}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO category_document (id, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		documentID, data)
	if err != nil {
		return &quizcontent.StoreError{Op: quizcontent.StoreOpSave, Path: "category_document", Err: err}
	}
	return nil
}
