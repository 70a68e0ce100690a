package quizcontent

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/quizdeck/quiz-content/pkg/quizcontent/asseturl"
)

// service implements Service over a DocumentStore.
type service struct {
	store  DocumentStore
	events EventSink
}

// Option configures the service
type Option func(*service)

// WithStore sets the backing document store (required)
func WithStore(store DocumentStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithEventSink sets the sink mutation events are fired into
func WithEventSink(events EventSink) Option {
	return func(s *service) {
		s.events = events
	}
}

// New creates a new quiz content service
func New(opts ...Option) (Service, error) {
	s := &service{
		events: NewNoopEventSink(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		return nil, errors.New("quizcontent: document store is required")
	}
	return s, nil
}

func (s *service) ListCategories(ctx context.Context, origin string) ([]CategoryBrief, error) {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	briefs := make([]CategoryBrief, 0, len(categories))
	for _, c := range categories {
		briefs = append(briefs, CategoryBrief{
			Title:        c.Title,
			RiveFile:     asseturl.Resolve(origin, c.RiveFile),
			StateMachine: c.StateMachine,
			Locked:       c.Locked,
			Adult:        c.Adult,
		})
	}
	return briefs, nil
}

func (s *service) QuestionsForCategory(ctx context.Context, origin, title string) ([]Question, error) {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	category := findCategory(categories, title)
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return questionsOf(origin, category), nil
}

func (s *service) QuestionsForCategories(ctx context.Context, origin string, titles []string) ([]Question, error) {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0)
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		// Unknown titles are skipped on purpose; only the
		// single-category lookup treats a miss as an error.
		if category := findCategory(categories, title); category != nil {
			questions = append(questions, questionsOf(origin, category)...)
		}
	}
	return questions, nil
}

func (s *service) ListAdminCategories(ctx context.Context, origin string) ([]Category, error) {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	resolved := make([]Category, 0, len(categories))
	for _, c := range categories {
		resolved = append(resolved, resolveCategory(origin, c))
	}
	return resolved, nil
}

func (s *service) CreateCategory(ctx context.Context, origin string, req CreateCategoryRequest) (*Category, error) {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	category := Category{
		Title:        req.Title,
		RiveFile:     req.RiveFile,
		StateMachine: req.StateMachine,
		Questions:    req.Questions,
	}
	if category.RiveFile == nil {
		riveFile := DefaultRiveFile
		category.RiveFile = &riveFile
	}
	if category.StateMachine == nil {
		stateMachine := DefaultStateMachine
		category.StateMachine = &stateMachine
	}
	if req.Locked != nil {
		category.Locked = *req.Locked
	}
	if req.Adult != nil {
		category.Adult = *req.Adult
	}
	if category.Questions == nil {
		category.Questions = []string{}
	}

	categories = append(categories, category)
	if err := s.store.Save(ctx, categories); err != nil {
		return nil, err
	}

	if err := s.events.CategoryCreated(ctx, &category); err != nil {
		slog.Warn("category created event failed", "title", category.Title, "error", err)
	}

	resolved := resolveCategory(origin, category)
	return &resolved, nil
}

func (s *service) UpdateCategory(ctx context.Context, origin, title string, patch UpdateCategoryRequest) (*Category, error) {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range categories {
		if categories[i].Title == title {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCategoryNotFound
	}

	// Shallow field overwrite: present patch fields replace the stored
	// value wholesale, absent fields are untouched. The record keeps its
	// position in the collection.
	category := categories[idx]
	if patch.Title != nil {
		category.Title = *patch.Title
	}
	if patch.RiveFile != nil {
		category.RiveFile = patch.RiveFile
	}
	if patch.StateMachine != nil {
		category.StateMachine = patch.StateMachine
	}
	if patch.Locked != nil {
		category.Locked = *patch.Locked
	}
	if patch.Adult != nil {
		category.Adult = *patch.Adult
	}
	if patch.Questions != nil {
		category.Questions = patch.Questions
	}
	categories[idx] = category

	if err := s.store.Save(ctx, categories); err != nil {
		return nil, err
	}

	if err := s.events.CategoryUpdated(ctx, &category); err != nil {
		slog.Warn("category updated event failed", "title", category.Title, "error", err)
	}

	resolved := resolveCategory(origin, category)
	return &resolved, nil
}

func (s *service) DeleteCategory(ctx context.Context, title string) error {
	categories, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	// Every matching title is removed, not just the first.
	remaining := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Title != title {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(categories) {
		return ErrCategoryNotFound
	}

	if err := s.store.Save(ctx, remaining); err != nil {
		return err
	}

	if err := s.events.CategoryDeleted(ctx, title); err != nil {
		slog.Warn("category deleted event failed", "title", title, "error", err)
	}
	return nil
}

// findCategory returns the first category whose title exactly equals title.
// Matching is case sensitive.
func findCategory(categories []Category, title string) *Category {
	for i := range categories {
		if categories[i].Title == title {
			return &categories[i]
		}
	}
	return nil
}

// questionsOf denormalizes the category metadata onto each of its
// questions, preserving question order.
func questionsOf(origin string, category *Category) []Question {
	questions := make([]Question, 0, len(category.Questions))
	for _, text := range category.Questions {
		questions = append(questions, Question{
			Text:         text,
			Category:     category.Title,
			RiveFile:     asseturl.Resolve(origin, category.RiveFile),
			StateMachine: category.StateMachine,
		})
	}
	return questions
}

// resolveCategory returns a copy of the category with its riveFile resolved
// against origin. The stored record is never mutated.
func resolveCategory(origin string, category Category) Category {
	category.RiveFile = asseturl.Resolve(origin, category.RiveFile)
	return category
}
