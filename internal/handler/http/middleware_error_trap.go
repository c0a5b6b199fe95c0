// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/user-management-api/internal/utils"
)

// withErrorTrap is the outermost middleware. It recovers any panic raised
// further down the chain, logs it with the request's trace id and answers
// with a generic 500 if nothing was sent to the client yet.
//
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withErrorTrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			// withTraceID runs inside this middleware, so its context logger
			// is gone by now; the header it set is still there.
			h.logger.Error().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("trace_id", w.Header().Get(traceIDHeader)).
				Interface("panic", rec).
				Str("stack", string(debug.Stack())).
				Msg("recovered from panic")

			if !tw.wroteHeader {
				utils.WriteError(tw, msgInternalError, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(tw, r)
	})
}
