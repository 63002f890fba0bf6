// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter retrieves encrypted asset payloads from the asset endpoint.
//
// The primary abstraction is [PayloadFetcher]. The package ships an HTTP
// implementation built on resty ([NewHTTPPayloadFetcher]). Transport
// failures wrap app.ErrTransport together with a status sentinel from
// errors.go; unparseable bodies are reported as [*FormatError], which wraps
// app.ErrFormat and carries a bounded sample of the raw body.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-asset-reveal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payload_fetcher_mock.go -package=mock

// PayloadFetcher retrieves and decodes an encrypted payload document.
type PayloadFetcher interface {
	// Fetch issues a cache-bypassing GET for url and decodes the body into
	// an [models.EncryptedPayload]. Relative URLs are resolved against the
	// configured base URL.
	//
	// Returns an error wrapping app.ErrTransport on network failure or a
	// non-2xx status, and a [*FormatError] when the body is not a valid
	// payload document.
	Fetch(ctx context.Context, url string) (models.EncryptedPayload, error)
}
