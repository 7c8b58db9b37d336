package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-saas-starter/internal/service"
	"github.com/MKhiriev/go-saas-starter/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidEmail:        http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrInvalidProjectID:    http.StatusBadRequest,
	service.ErrInvalidStatus:       http.StatusBadRequest,
	service.ErrEmptyText:           http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidAPIKey:      http.StatusUnauthorized,
	ErrMissingAPIKey:              http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrProjectNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap pins the exact wire message for errors whose wording is
// part of the public API contract.
var errorMessageMap = map[error]string{
	store.ErrEmailAlreadyExists:   "Email already registered",
	service.ErrInvalidCredentials: "Invalid credentials",
	service.ErrInvalidAPIKey:      "Invalid API key",
	ErrMissingAPIKey:              "Missing API key",
	store.ErrProjectNotFound:      "Project not found",
	service.ErrInvalidProjectID:   "Invalid project id",
	service.ErrEmptyText:          "Text required",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError resolves err to a status code and a wire message and writes
// both. Errors without a pinned message fall back to their own text for
// client errors and to the generic status text for everything else.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			http.Error(w, message, status)
			return
		}
	}

	if status < http.StatusInternalServerError {
		http.Error(w, err.Error(), status)
		return
	}

	http.Error(w, http.StatusText(status), status)
}
