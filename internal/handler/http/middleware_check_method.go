// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/zk-vault/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is the router's MethodNotAllowed handler. A method that is
// not registered for the matched pattern answers 404 instead of chi's 405,
// so callers cannot probe which routes exist.
//
// Routes are compared by exact pattern against the request path; paths with
// URL parameters never match and always answer 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}

		router.ServeHTTP(w, r)
	}
}
