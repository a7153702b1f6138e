package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/finlight/pocketledger/internal/adapter/http/dto"
	"github.com/finlight/pocketledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrReceivableNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadySettled):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDirection):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSourceRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDebtorRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails hides internals for server-side failures but passes domain
// errors through, since those describe the caller's mistake.
func errorDetails(status int, err error) string {
	if status == http.StatusInternalServerError {
		return ""
	}

	return err.Error()
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
