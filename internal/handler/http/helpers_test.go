package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/mock"
	"github.com/MKhiriev/user-management-api/internal/service"
	"github.com/MKhiriev/user-management-api/internal/store"
)

const (
	testAPIKey  = "test-secret"
	testVersion = "test-version"
	testUserID  = "0190a2b4-7c8d-7e9f-8a1b-2c3d4e5f6a7b"
)

// newTestHandler builds a bare Handler for middleware tests.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), apiKey: testAPIKey}
}

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newBufferedLogger returns a logger writing JSON lines into the returned buffer.
func newBufferedLogger() (*logger.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return &logger.Logger{Logger: zerolog.New(buf)}, buf
}

// injectLogger puts l into the request context the same way withTraceID does.
func injectLogger(r *http.Request, l *logger.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func testConfig(order string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:      config.App{Version: testVersion},
		Security: config.Security{APIKey: testAPIKey},
		Server:   config.Server{HTTPAddress: ":0", MiddlewareOrder: order},
	}
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newMockedRouter wires a full router around a gomock UserService.
func newMockedRouter(t *testing.T) (http.Handler, *mock.MockUserService) {
	t.Helper()

	userService := mock.NewMockUserService(gomock.NewController(t))
	services := &service.Services{
		UserService:    userService,
		AppInfoService: &mockAppInfoService{version: testVersion},
	}

	h := NewHandler(services, testConfig(config.MiddlewareOrderLogFirst), logger.Nop())
	return h.Init(), userService
}

// newRealRouter wires a full router around the real services and an
// in-memory store.
func newRealRouter(t *testing.T, cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) http.Handler {
	t.Helper()

	services, err := service.NewServices(store.NewStorages(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg, log, opts...).Init()
}

// doRequest sends a request through h. Non-GET requests carry the test key
// unless withKey is false.
func doRequest(h http.Handler, method, target, body string, withKey bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if withKey {
		req.Header.Set(apiKeyHeader, testAPIKey)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, rec)["error"]
}
