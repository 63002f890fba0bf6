// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// getBlob dereferences a resource locator. Released resources answer 404.
func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	locator := store.LocatorScheme + chi.URLParam(r, "id")

	resource, err := h.services.ResourceService.Open(r.Context(), locator)
	if err != nil {
		log.Debug().Err(err).Str("locator", locator).Msg("resource lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", contentType(resource.MIME))
	w.Header().Set("Content-Length", strconv.Itoa(resource.Size()))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resource.Data)
}

// contentType normalizes the media type declared by the payload. The mime
// field is outside the authenticated ciphertext, so anything that does not
// parse falls back to [models.DefaultMIME].
func contentType(declared string) string {
	mediaType, params, err := mime.ParseMediaType(declared)
	if err != nil || !strings.Contains(mediaType, "/") {
		return models.DefaultMIME
	}
	if formatted := mime.FormatMediaType(mediaType, params); formatted != "" {
		return formatted
	}
	return models.DefaultMIME
}
