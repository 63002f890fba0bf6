// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrResourceNotFound is returned when a locator does not address a live
	// resource, either because it was never created or it was released.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrEmptyResource is returned when a resource would hold no bytes.
	ErrEmptyResource = errors.New("resource data is empty")
)
