// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-asset-reveal/internal/app"
)

// Status sentinels, always wrapped together with app.ErrTransport.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")
)

// Payload document sentinels, wrapped by [FormatError].
var (
	ErrMalformedDocument = errors.New("malformed payload document")
	ErrMissingField      = errors.New("missing payload field")
)

// FormatError reports a response body that could not be decoded into an
// encrypted payload.
type FormatError struct {
	// Sample is at most the configured number of leading bytes of the body.
	Sample string
	// BodySize is the full length of the body in bytes.
	BodySize int
	// Err is the underlying decode failure.
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %v", app.ErrFormat, e.Err)
}

// Unwrap exposes both app.ErrFormat and the decode failure to errors.Is.
func (e *FormatError) Unwrap() []error {
	return []error{app.ErrFormat, e.Err}
}
