package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/security"
	"gardenhub-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service-layer errors onto HTTP statuses. Validation
// problems carry their field errors; everything unrecognized is a 500
// with a generic body.
func writeError(w http.ResponseWriter, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
	case errors.Is(err, service.ErrNotPermitted):
		writeMessage(w, http.StatusForbidden, "not permitted")
	case errors.Is(err, service.ErrOrderNotOpen):
		writeMessage(w, http.StatusConflict, "order is not open")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrAccountInactive):
		writeMessage(w, http.StatusUnauthorized, "account is not activated")
	case errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, sql.ErrNoRows):
		writeMessage(w, http.StatusNotFound, "not found")
	default:
		logger.Error("request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
