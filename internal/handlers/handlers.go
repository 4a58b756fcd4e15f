package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/freelance-manager/internal/httpx"
	"github.com/diewo77/freelance-manager/internal/services"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", ve.Violations)
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, services.ErrInvalidTransition):
		httpx.JSONError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, services.ErrClientReferenced):
		httpx.JSONError(w, http.StatusConflict, "client_referenced", err.Error())
	case errors.Is(err, services.ErrDuplicateNumber):
		// Invariant violation: nothing sensible to recover, surface as 500.
		httpx.JSONError(w, http.StatusInternalServerError, "duplicate_number", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// idParam parses the ?id= query parameter.
func idParam(r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// idParamNamed parses an arbitrary positive-integer query parameter.
func idParamNamed(r *http.Request, name string) (uint, bool) {
	idStr := r.URL.Query().Get(name)
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// anneeParam parses the optional ?annee= query parameter, 0 when absent.
func anneeParam(r *http.Request) int {
	if v := r.URL.Query().Get("annee"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
