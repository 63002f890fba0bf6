// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package page models the slice of the page document the reveal pipeline
// depends on: a ready state with one-shot readiness listeners, and elements
// with a source locator, load/error callback slots and teardown hooks.
//
// Elements are found by "#id" or ".class" selectors. All types are safe for
// concurrent use.
package page
