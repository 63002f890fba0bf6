// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the error taxonomy shared by every stage of the reveal
// pipeline.
//
// Each stage wraps one of the sentinels below with %w so that callers can
// classify any pipeline error with [errors.Is], independent of the layer that
// produced it.
package app

import "errors"

var (
	// ErrConfiguration indicates a build or deployment defect: a malformed
	// embedded key, wrong payload field lengths, or a missing page target.
	ErrConfiguration = errors.New("configuration error")

	// ErrTransport indicates the asset endpoint could not be reached or
	// answered with a non-success status.
	ErrTransport = errors.New("transport error")

	// ErrFormat indicates the asset endpoint answered with a body that is not
	// a well-formed encrypted payload document.
	ErrFormat = errors.New("format error")

	// ErrIntegrity indicates authentication-tag verification failed: the
	// payload was tampered with or the key and nonce do not match.
	ErrIntegrity = errors.New("integrity error")
)

// Kind returns the short taxonomy name of err ("configuration", "transport",
// "format", "integrity"), or "unknown" if err wraps none of the sentinels.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrIntegrity):
		return "integrity"
	default:
		return "unknown"
	}
}
