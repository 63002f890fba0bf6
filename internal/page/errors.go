// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "errors"

var (
	ErrInvalidSelector = errors.New("invalid selector")
	ErrElementNotFound = errors.New("element not found")
	ErrDuplicateID     = errors.New("duplicate element id")
)
