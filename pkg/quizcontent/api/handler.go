// Package api exposes the quiz content service over HTTP/JSON.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/quizdeck/quiz-content/pkg/quizcontent"
)

// Handler handles HTTP requests for quiz categories and questions
type Handler struct {
	service quizcontent.Service
}

// NewHandler creates a new quiz content handler
func NewHandler(service quizcontent.Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the routes for the public and admin API
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/categories", h.ListCategories)
	r.Get("/questions", h.GetQuestions)
	r.Get("/questions/multi", h.GetQuestionsMulti)

	r.Route("/admin/categories", func(r chi.Router) {
		r.Get("/", h.ListAdminCategories)
		r.Post("/", h.CreateCategory)
		r.Put("/{title}", h.UpdateCategory)
		r.Delete("/{title}", h.DeleteCategory)
	})

	return r
}

// DeleteResponse is the response body for a successful delete
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ListCategories lists the public projection of every category
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), requestOrigin(r))
	if err != nil {
		h.serverError(w, r, "failed to list categories", err)
		return
	}
	render.JSON(w, r, categories)
}

// GetQuestions lists the questions of a single category
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("category")
	if title == "" {
		http.Error(w, "Missing required 'category' parameter", http.StatusBadRequest)
		return
	}

	questions, err := h.service.QuestionsForCategory(r.Context(), requestOrigin(r), title)
	if err != nil {
		if errors.Is(err, quizcontent.ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "failed to get questions", err)
		return
	}
	render.JSON(w, r, questions)
}

// GetQuestionsMulti lists the questions of several categories at once.
// Titles that match no category are skipped silently.
func (h *Handler) GetQuestionsMulti(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("categories")
	if raw == "" {
		http.Error(w, "Missing required 'categories' parameter", http.StatusBadRequest)
		return
	}

	titles := strings.Split(raw, ",")
	questions, err := h.service.QuestionsForCategories(r.Context(), requestOrigin(r), titles)
	if err != nil {
		h.serverError(w, r, "failed to get questions", err)
		return
	}
	render.JSON(w, r, questions)
}

// ListAdminCategories lists every full category record
func (h *Handler) ListAdminCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListAdminCategories(r.Context(), requestOrigin(r))
	if err != nil {
		h.serverError(w, r, "failed to list categories", err)
		return
	}
	render.JSON(w, r, categories)
}

// CreateCategory creates a new category from the request body
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req quizcontent.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), requestOrigin(r), req)
	if err != nil {
		h.serverError(w, r, "failed to create category", err)
		return
	}
	render.JSON(w, r, category)
}

// UpdateCategory patches the category named in the path
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	var patch quizcontent.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), requestOrigin(r), title, patch)
	if err != nil {
		if errors.Is(err, quizcontent.ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "failed to update category", err)
		return
	}
	render.JSON(w, r, category)
}

// DeleteCategory deletes every category with the title named in the path
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	if err := h.service.DeleteCategory(r.Context(), title); err != nil {
		if errors.Is(err, quizcontent.ErrCategoryNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "failed to delete category", err)
		return
	}
	render.JSON(w, r, DeleteResponse{Success: true})
}

// serverError logs the diagnostic and answers with a generic fault so
// storage details never leak to clients.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "path", r.URL.Path, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// requestOrigin reconstructs the scheme://host the client used, honoring
// X-Forwarded-Proto when the server sits behind a proxy.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
