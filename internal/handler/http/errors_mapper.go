package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/service"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order: a failed write wraps the store
// error that caused it (for example store.ErrUserNotFound after a
// concurrent delete), so the 500 entries must win over the 4xx ones.
var errorStatusMap = []errorStatus{
	{service.ErrUserNotCreated, http.StatusInternalServerError, msgInternalError},
	{service.ErrUserNotUpdated, http.StatusInternalServerError, msgInternalError},
	{service.ErrUserNotDeleted, http.StatusInternalServerError, msgInternalError},

	{ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge, msgBodyTooLarge},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, msgInvalidData},

	{service.ErrEmailAlreadyExists, http.StatusConflict, msgEmailExists},
	{store.ErrEmailAlreadyExists, http.StatusConflict, msgEmailExists},

	{service.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
	{store.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
}

// statusFromError classifies err into a status code and a client-safe
// message. Unknown errors become a generic 500.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if !errors.Is(err, entry.target) {
			continue
		}
		if entry.target == service.ErrInvalidDataProvided {
			return entry.status, validationMessage(err)
		}
		return entry.status, entry.message
	}
	return http.StatusInternalServerError, msgInternalError
}

// validationMessage turns a field check error into a sentence,
// e.g. "name is required" into "Name is required.".
func validationMessage(err error) string {
	fieldErr := validators.FieldError(err)
	if fieldErr == nil {
		return msgInvalidData
	}

	msg := fieldErr.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// handlerFunc is an HTTP handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. It is the only place where handler
// errors are turned into responses.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		log := logger.FromRequest(r)
		status, message := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("method", r.Method).Str("uri", r.RequestURI).Msg("request failed")
		} else {
			log.Debug().Err(err).Int("status", status).Msg("request rejected")
		}

		utils.WriteError(w, message, status)
	}
}
