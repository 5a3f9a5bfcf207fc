package handlers

import (
	"Enderbrary/internal/apperr"
	"Enderbrary/internal/middleware"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError переводит доменную ошибку в стабильный статус и JSON-тело.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorw("unhandled error", "error", err)
		writeJSON(w, status, errorResponse{Error: "InternalError", Message: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: apperr.Code(err), Message: err.Error()})
}

// requireIdentity достаёт личность вызывающего; без валидного токена — 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthenticated", Message: "missing or invalid token"})
		return middleware.Identity{}, false
	}
	return id, true
}
