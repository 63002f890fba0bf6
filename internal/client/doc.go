// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the page-side application runtime.
//
// It builds the page document holding the reveal target, triggers the
// reveal on document readiness and, when a server address is configured,
// serves the revealed resource until the process is asked to stop. Leaving
// the page tears the target down, which releases the bound resource.
package client
