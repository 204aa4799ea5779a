package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/service"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/internal/validators"
)

// errorStatuses is checked in order; the first target matched by errors.Is
// decides the status.
var errorStatuses = []struct {
	target error
	status int
}{
	{utils.ErrInvalidJSONBody, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},
	{service.ErrNotReady, http.StatusServiceUnavailable},

	{ErrInvalidResourceID, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrTurfNotFound, http.StatusNotFound},
	{store.ErrBookingNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// routeMessages are the client-facing texts of one route. Internal error
// details are only ever logged.
type routeMessages struct {
	badRequest string
	notFound   string
	internal   string
}

// writeServiceError logs err and answers with the status mapped from it.
// Field validation failures are reported with their per-field messages.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msgs routeMessages) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := msgs.internal
	switch status {
	case http.StatusBadRequest:
		message = msgs.badRequest
		var validationErrs validators.ValidationErrors
		if errors.Is(err, service.ErrInvalidDataProvided) && errors.As(err, &validationErrs) {
			message = validationErrs.Messages()
		}
	case http.StatusNotFound:
		message = msgs.notFound
	case http.StatusUnauthorized:
		message = invalidTokenMessage
	case http.StatusServiceUnavailable:
		message = http.StatusText(http.StatusServiceUnavailable)
	}
	if message == "" {
		message = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteError(w, message, status)
}
