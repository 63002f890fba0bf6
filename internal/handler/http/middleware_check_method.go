// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
)

// hideMethodNotAllowed is installed as the router's MethodNotAllowed
// handler. A known path requested with a method it does not serve is
// answered with 404, so callers cannot learn which blob ids or API paths
// exist. Requests the router can in fact serve are handed back to it.
func hideMethodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("unsupported method answered as not found")
		w.WriteHeader(http.StatusNotFound)
	}
}
