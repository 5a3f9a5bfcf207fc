package handlers

import (
	"Enderbrary/internal/model"
	"Enderbrary/internal/service"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BorrowHandler — HTTP-обвязка воркфлоу заявок.
type BorrowHandler struct {
	Borrow *service.BorrowService
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

// NewBorrowHandler создаёт хендлер заявок.
func NewBorrowHandler(borrow *service.BorrowService, users *service.UserService, logger *zap.SugaredLogger) *BorrowHandler {
	return &BorrowHandler{Borrow: borrow, Users: users, Logger: logger}
}

// Create — POST /api/v1/borrow/{bookId}
func (h *BorrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	// профиль нужен уведомлениям; ошибка апсерта не валит заявку
	if err := h.Users.Ensure(r.Context(), id.UserID, id.Name, id.Email); err != nil {
		h.Logger.Warnw("failed to ensure user profile", "user_id", id.UserID, "error", err)
	}

	view, err := h.Borrow.Create(r.Context(), chi.URLParam(r, "bookId"), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Approve — PATCH /api/v1/borrow/{requestId}/approve
func (h *BorrowHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Borrow.Approve)
}

// Reject — PATCH /api/v1/borrow/{requestId}/reject
func (h *BorrowHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Borrow.Reject)
}

// ReturnBook — PATCH /api/v1/borrow/{requestId}/return
func (h *BorrowHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Borrow.ReturnBook)
}

// CompleteReturn — PATCH /api/v1/borrow/{requestId}/complete-return
func (h *BorrowHandler) CompleteReturn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Borrow.CompleteReturn)
}

// transition — общий каркас для операций смены статуса: identity, вызов
// сервиса, сериализация результата.
func (h *BorrowHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, requestID, callerID string) (*service.BorrowRequestView, error)) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	view, err := op(r.Context(), chi.URLParam(r, "requestId"), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Get — GET /api/v1/borrow/{requestId}
func (h *BorrowHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}
	view, err := h.Borrow.Get(r.Context(), chi.URLParam(r, "requestId"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// MyRequests — GET /api/v1/borrow/my-requests
func (h *BorrowHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Borrow.ListByBorrower(r.Context(), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// MyPendingRequests — GET /api/v1/borrow/my-requests/pending
func (h *BorrowHandler) MyPendingRequests(w http.ResponseWriter, r *http.Request) {
	h.listByBorrowerAndStatus(w, r, model.StatusPending)
}

// MyApprovedRequests — GET /api/v1/borrow/my-requests/approved
func (h *BorrowHandler) MyApprovedRequests(w http.ResponseWriter, r *http.Request) {
	h.listByBorrowerAndStatus(w, r, model.StatusApproved)
}

func (h *BorrowHandler) listByBorrowerAndStatus(w http.ResponseWriter, r *http.Request, status model.BorrowStatus) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Borrow.ListByBorrowerAndStatus(r.Context(), id.UserID, status)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// IncomingRequests — GET /api/v1/borrow/incoming-requests
func (h *BorrowHandler) IncomingRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Borrow.ListByLender(r.Context(), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// LentBooks — GET /api/v1/borrow/lent (одобренные заявки к пользователю)
func (h *BorrowHandler) LentBooks(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Borrow.ListByLenderAndStatus(r.Context(), id.UserID, model.StatusApproved)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// RequestsForBook — GET /api/v1/borrow/book/{bookId}
func (h *BorrowHandler) RequestsForBook(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	views, err := h.Borrow.ListForBook(r.Context(), chi.URLParam(r, "bookId"), id.UserID)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
