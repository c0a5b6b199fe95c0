package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			rec := recover()

			// net/http sends 200 when the handler writes nothing
			status := lw.status
			if status == 0 {
				status = http.StatusOK
			}
			// withErrorTrap answers 500 for a panic unless headers are out
			if rec != nil && !lw.wroteHeader {
				status = http.StatusInternalServerError
			}

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Send()

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}
