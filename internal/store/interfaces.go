// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps decrypted assets in memory as displayable resources.
//
// Plaintext never leaves process memory: there is no persistence layer, and a
// released resource is dropped from the store immediately.
package store

import "github.com/MKhiriev/go-asset-reveal/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_store_mock.go -package=mock

// ResourceStore owns every displayable resource created by the pipeline.
type ResourceStore interface {
	// Create wraps data in a new resource with a fresh "blob:" locator.
	Create(data []byte, mime string) (models.Resource, error)
	// Get returns the resource addressed by locator.
	Get(locator string) (models.Resource, error)
	// Release drops the resource addressed by locator. It reports whether
	// the resource was still held.
	Release(locator string) bool
	// Len returns the number of live resources.
	Len() int
}
