// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidEncoding    = errors.New("invalid base64 encoding")
	ErrInvalidKeyEncoding = errors.New("embedded key is not a reversed hex string")
	ErrInvalidKeyLength   = errors.New("invalid symmetric key length")
	ErrInvalidNonceLength = errors.New("invalid nonce length")
	ErrInvalidTagLength   = errors.New("invalid authentication tag length")
)
