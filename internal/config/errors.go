// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid asset fetch settings
	// (for example, an empty asset URL or a relative one without a base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, a target selector that is neither #id nor .class).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid resource server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
