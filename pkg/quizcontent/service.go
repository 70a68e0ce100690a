package quizcontent

import (
	"context"
)

// Service is the query and mutation engine over the category collection.
//
// The service is stateless between calls: every operation loads the full
// collection from the DocumentStore, computes over it in memory, and (for
// mutations) persists the full updated collection. Concurrent mutations can
// therefore race; each reads the pre-mutation collection and the later save
// wins. That lost-update window is accepted for single-admin content
// editing.
//
// origin is the scheme://host of the requesting client; riveFile references
// in returned values are resolved against it, while persisted records always
// keep the original relative reference.
type Service interface {
	// ListCategories returns the public projection of every category, in
	// collection order, with riveFile references resolved.
	ListCategories(ctx context.Context, origin string) ([]CategoryBrief, error)

	// QuestionsForCategory returns the questions of the first category
	// whose title exactly equals title, in original order. Fails with
	// ErrCategoryNotFound when no title matches.
	QuestionsForCategory(ctx context.Context, origin, title string) ([]Question, error)

	// QuestionsForCategories flat-appends the questions of each requested
	// title in the order given. Titles are trimmed of surrounding
	// whitespace and empty entries dropped; titles matching no category
	// contribute zero questions and never cause an error.
	QuestionsForCategories(ctx context.Context, origin string, titles []string) ([]Question, error)

	// ListAdminCategories returns every full category record with the
	// riveFile reference resolved.
	ListAdminCategories(ctx context.Context, origin string) ([]Category, error)

	// CreateCategory appends a new category built from the request,
	// applying defaults for absent fields, and persists the collection.
	// No uniqueness check is made against existing titles.
	CreateCategory(ctx context.Context, origin string, req CreateCategoryRequest) (*Category, error)

	// UpdateCategory merges the patch onto the first category whose title
	// equals title as a shallow field overwrite, keeps its position, and
	// persists the collection. Fails with ErrCategoryNotFound.
	UpdateCategory(ctx context.Context, origin, title string, patch UpdateCategoryRequest) (*Category, error)

	// DeleteCategory removes every category whose title equals title and
	// persists the collection. Fails with ErrCategoryNotFound when
	// nothing matched, leaving the persisted collection unchanged.
	DeleteCategory(ctx context.Context, title string) error
}
