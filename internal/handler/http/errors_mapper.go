package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-car-share/internal/service"
	"github.com/MKhiriev/go-car-share/internal/store"
	"github.com/MKhiriev/go-car-share/internal/utils"
	"github.com/MKhiriev/go-car-share/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,
	service.ErrBadTrip:             http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrCarNotFound:   http.StatusNotFound,
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrUsernameTaken: http.StatusConflict,

	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRow:       http.StatusInternalServerError,
	store.ErrScanningRows:      http.StatusInternalServerError,
	store.ErrBeginningSession:  http.StatusInternalServerError,
	store.ErrCommittingSession: http.StatusInternalServerError,

	errInvalidCarID: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeAPIError writes the JSON error envelope used across the API.
func writeAPIError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.APIError{Detail: detail}, statusCode)
}

// respondError resolves err to an HTTP status and writes the error envelope.
// Server-side failures get a generic detail so internals never leak to the
// caller; for everything else the supplied detail is used as-is.
func respondError(w http.ResponseWriter, err error, detail string) {
	statusCode := statusFromError(err)
	if statusCode == http.StatusInternalServerError {
		detail = http.StatusText(http.StatusInternalServerError)
	}
	writeAPIError(w, detail, statusCode)
}
