package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/user-management-api/internal/service"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "invalid json", err: fmt.Errorf("%w: eof", ErrInvalidJSON), wantStatus: http.StatusBadRequest, wantMessage: msgInvalidJSON},
		{name: "body too large", err: ErrRequestBodyTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantMessage: msgBodyTooLarge},
		{name: "validation with field error", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName), wantStatus: http.StatusBadRequest, wantMessage: "Name is required."},
		{name: "validation without field error", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidData},
		{name: "service email conflict", err: service.ErrEmailAlreadyExists, wantStatus: http.StatusConflict, wantMessage: msgEmailExists},
		{name: "store email conflict", err: fmt.Errorf("add: %w", store.ErrEmailAlreadyExists), wantStatus: http.StatusConflict, wantMessage: msgEmailExists},
		{name: "service not found", err: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMessage: msgUserNotFound},
		{name: "store not found", err: fmt.Errorf("get: %w", store.ErrUserNotFound), wantStatus: http.StatusNotFound, wantMessage: msgUserNotFound},
		{name: "not updated wins over wrapped not found", err: fmt.Errorf("%w: %w", service.ErrUserNotUpdated, store.ErrUserNotFound), wantStatus: http.StatusInternalServerError, wantMessage: msgInternalError},
		{name: "not deleted wins over wrapped not found", err: fmt.Errorf("%w: %w", service.ErrUserNotDeleted, store.ErrUserNotFound), wantStatus: http.StatusInternalServerError, wantMessage: msgInternalError},
		{name: "not created", err: fmt.Errorf("%w: %w", service.ErrUserNotCreated, store.ErrUserAlreadyExists), wantStatus: http.StatusInternalServerError, wantMessage: msgInternalError},
		{name: "version conflict", err: store.ErrVersionConflict, wantStatus: http.StatusInternalServerError, wantMessage: msgInternalError},
		{name: "unknown error", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantMessage: msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "Email is not a valid address.", validationMessage(validators.ErrInvalidEmail))
	assert.Equal(t, "Name must be between 2 and 100 characters.", validationMessage(fmt.Errorf("wrap: %w", validators.ErrInvalidNameLength)))
	assert.Equal(t, msgInvalidData, validationMessage(errors.New("other")))
}

func TestHandle(t *testing.T) {
	t.Run("nil error leaves response alone", func(t *testing.T) {
		h := newTestHandler()
		rec := httptest.NewRecorder()

		h.handle(func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusAccepted)
			return nil
		}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("server errors are logged at error level", func(t *testing.T) {
		h := newTestHandler()
		log, buf := newBufferedLogger()
		rec := httptest.NewRecorder()
		req := injectLogger(httptest.NewRequest(http.MethodGet, "/boom", nil), log)

		h.handle(func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("secret internal detail")
		}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "secret")
		assert.Contains(t, buf.String(), `"level":"error"`)
		assert.Contains(t, buf.String(), "secret internal detail")
	})

	t.Run("client errors are not logged as errors", func(t *testing.T) {
		h := newTestHandler()
		log, buf := newBufferedLogger()
		rec := httptest.NewRecorder()
		req := injectLogger(httptest.NewRequest(http.MethodGet, "/", nil), log)

		h.handle(func(w http.ResponseWriter, r *http.Request) error {
			return service.ErrUserNotFound
		}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"User not found."}`, rec.Body.String())
		assert.False(t, strings.Contains(buf.String(), `"level":"error"`))
	})
}
