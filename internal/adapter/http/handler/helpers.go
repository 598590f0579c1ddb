package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fletero/backoffice/internal/adapter/http/dto"
	"github.com/fletero/backoffice/internal/adapter/http/middleware"
	"github.com/fletero/backoffice/internal/domain"
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
	case errors.Is(err, domain.ErrCajaNotFound),
		errors.Is(err, domain.ErrIngresoNotFound),
		errors.Is(err, domain.ErrGastoNotFound),
		errors.Is(err, domain.ErrRemuneracionNotFound),
		errors.Is(err, domain.ErrLegalNotFound),
		errors.Is(err, domain.ErrRendicionNotFound),
		errors.Is(err, domain.ErrSalidaNotFound),
		errors.Is(err, domain.ErrOrdenNotFound),
		errors.Is(err, domain.ErrChoferNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// principal extracts the authenticated actor placed in the context by
// the auth middleware.
func principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	actor, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no authenticated session")
		return domain.Principal{}, false
	}
	return actor, true
}

// dateRange reads the desde/hasta query parameters.
func dateRange(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("desde"), q.Get("hasta")
}
