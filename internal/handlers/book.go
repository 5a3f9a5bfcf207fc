package handlers

import (
	"Enderbrary/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookHandler — HTTP-обвязка операций владельца над книгами.
type BookHandler struct {
	Books  *service.BookService
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

// NewBookHandler создаёт хендлер книг.
func NewBookHandler(books *service.BookService, users *service.UserService, logger *zap.SugaredLogger) *BookHandler {
	return &BookHandler{Books: books, Users: users, Logger: logger}
}

func (h *BookHandler) decodeInput(w http.ResponseWriter, r *http.Request) (service.BookInput, bool) {
	var in service.BookInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Logger.Warnw("invalid book payload", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "InvalidRequest", Message: "invalid request body"})
		return in, false
	}
	if strings.TrimSpace(in.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "InvalidRequest", Message: "title is required"})
		return in, false
	}
	return in, true
}

// Add — POST /api/v1/books
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	if err := h.Users.Ensure(r.Context(), id.UserID, id.Name, id.Email); err != nil {
		h.Logger.Warnw("failed to ensure user profile", "user_id", id.UserID, "error", err)
	}

	view, err := h.Books.Add(r.Context(), id.UserID, in)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get — GET /api/v1/books/{bookId}
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}
	view, err := h.Books.Get(r.Context(), chi.URLParam(r, "bookId"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ListMine — GET /api/v1/books/me
func (h *BookHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Books.ListMine(r.Context(), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// ListMineArchived — GET /api/v1/books/me/archived
func (h *BookHandler) ListMineArchived(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Books.ListMineArchived(r.Context(), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Update — PATCH /api/v1/books/{bookId}
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	view, err := h.Books.Update(r.Context(), chi.URLParam(r, "bookId"), id.UserID, in)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Archive — PATCH /api/v1/books/{bookId}/archive
func (h *BookHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	view, err := h.Books.Archive(r.Context(), chi.URLParam(r, "bookId"), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
