// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP resource server.
//
// The server serves until its context is cancelled and then shuts down
// gracefully within the configured timeout.
package server
