// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-asset-reveal/internal/logger"

type Storages struct {
	ResourceStore ResourceStore
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		ResourceStore: NewMemoryResourceStore(logger),
	}
}
