// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-asset-reveal/internal/service"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrResourceUnavailable:   http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrResourceNotFound: http.StatusNotFound,

	ErrNoRevealHasRun: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
