// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/utils"
)

// getStatus reports the result of the most recent reveal.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	result, ok := h.services.Revealer.LastResult()
	if !ok {
		err := ErrNoRevealHasRun
		utils.WriteJSON(w, map[string]string{"error": err.Error()}, statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing status response failed")
	}
}
