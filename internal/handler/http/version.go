// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-asset-reveal/internal/utils"
)

// getVersion answers with the plain version string, or with the full build
// information when the client accepts JSON.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Accept") == "application/json" {
		utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
		return
	}

	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
