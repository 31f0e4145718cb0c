package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotResourceOwner:        http.StatusForbidden,

	ErrNoSessionCookie:     http.StatusUnauthorized,
	ErrEmptySessionToken:   http.StatusUnauthorized,
	errInvalidID:           http.StatusBadRequest,
	errInvalidJSON:         http.StatusBadRequest,
	errInvalidSearchParams: http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrListingNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto its HTTP status code and writes the uniform
// error body. Internal errors are masked with the generic status text so
// storage details never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	_, _ = utils.WriteJSON(w, models.APIError{
		Success:    false,
		StatusCode: status,
		Message:    message,
	}, status)
}
