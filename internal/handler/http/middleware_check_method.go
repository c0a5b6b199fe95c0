// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/user-management-api/internal/utils"
)

// routeMethods lists the methods CheckHTTPMethod probes when building the
// Allow header.
var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi calls it when the path matches a registered route but the method does
// not. The handler answers 405 with a JSON body and an Allow header naming
// the methods the route does accept, found by matching the request path
// against the router for every method in routeMethods.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// routeNotFound answers unknown paths with a JSON 404.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}
