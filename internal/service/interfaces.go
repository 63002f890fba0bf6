// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-asset-reveal/internal/page"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// Revealer runs the reveal pipeline: unveil the key, fetch the payload,
// decrypt it and bind the plaintext to a page target.
//
// A payload that decrypts to zero bytes is not bound: the run fails at the
// binding stage with a format error and the target keeps its source.
type Revealer interface {
	// Reveal runs the pipeline against target. A nil target, including a
	// typed nil, fails before the key is unveiled. The result always
	// describes the run; the error is returned only when failures are
	// configured to surface. Panics raised by a stage are reported as
	// failures of that stage.
	Reveal(ctx context.Context, target Target) (models.RevealResult, error)
	// RevealIn locates the configured target in doc and reveals into it.
	RevealIn(ctx context.Context, doc Document) (models.RevealResult, error)
	// Run is the fire-and-forget entry point. It never panics and never
	// returns an error to the host.
	Run(ctx context.Context, doc Document)
	// Release frees the resource bound to target by a previous reveal.
	Release(target Target) bool
	// LastResult returns the result of the most recent run.
	LastResult() (models.RevealResult, bool)
}

// ResourceService dereferences resource locators.
type ResourceService interface {
	Open(ctx context.Context, locator string) (models.Resource, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// Target is the visual element receiving the revealed resource.
type Target interface {
	// Valid reports whether the target can be written to. Implementations
	// backed by pointers must answer false on a nil receiver.
	Valid() bool
	Source() string
	SetSource(locator string)
	NotifyLoad(locator string)
	NotifyError(err error)
	OnTeardown(fn func())
}

// Document locates targets by selector.
type Document interface {
	QuerySelector(selector string) (*page.Element, error)
}
