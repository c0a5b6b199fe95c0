package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
)

const apiKeyHeader = "X-API-Key"

// withAPIKey lets GET requests through and requires every other method to
// carry the configured key in the X-API-Key header. With no key configured
// all non-GET requests are rejected.
func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	expected := []byte(h.apiKey)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		provided := r.Header.Get(apiKeyHeader)
		if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			logger.FromRequest(r).Warn().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("remote_addr", r.RemoteAddr).
				Bool("key_provided", provided != "").
				Msg("unauthorized request")

			utils.WriteError(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
