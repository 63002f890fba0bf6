// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	router.Get("/blob/{id}", h.getBlob)

	router.Get("/api/status", h.getStatus)
	router.Get("/api/version", h.getVersion)

	router.MethodNotAllowed(hideMethodNotAllowed(router))

	return router
}
