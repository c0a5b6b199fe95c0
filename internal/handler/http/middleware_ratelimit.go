package http

import (
	"crypto/subtle"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
)

// withRateLimit applies a token bucket per client. Callers holding the
// configured API key share one bucket; everyone else is bucketed by remote IP.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(1/h.limiter.RPS()))))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := h.clientKey(r)

		if !h.limiter.Get(key).Allow() {
			if h.metrics != nil {
				h.metrics.RateLimited()
			}
			logger.FromRequest(r).Warn().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("remote_addr", r.RemoteAddr).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", retryAfter)
			utils.WriteError(w, msgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey only trusts the header when it matches the configured key, so
// rotating made-up keys cannot mint fresh buckets.
func (h *Handler) clientKey(r *http.Request) string {
	if key := r.Header.Get(apiKeyHeader); key != "" && h.apiKey != "" &&
		subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) == 1 {
		return "key:" + key
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
