// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	// credential endpoints, rate limited per client IP
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/passwords", h.passwords.list)
		r.Post("/api/passwords", h.passwords.create)
		r.Get("/api/passwords/{id}", h.passwords.get)
		r.Put("/api/passwords/{id}", h.passwords.update)
		r.Delete("/api/passwords/{id}", h.passwords.delete)

		r.Get("/api/notes", h.notes.list)
		r.Post("/api/notes", h.notes.create)
		r.Get("/api/notes/{id}", h.notes.get)
		r.Put("/api/notes/{id}", h.notes.update)
		r.Delete("/api/notes/{id}", h.notes.delete)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
