// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves revealed resources and pipeline diagnostics.
//
// A resource locator "blob:<id>" is dereferenced at GET /blob/{id}. The
// response carries the asset's media type and is never cacheable. GET
// /api/status reports the most recent reveal result and GET /api/version the
// build information. Request tracing and access logging are applied as
// middleware.
package http
