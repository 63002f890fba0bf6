// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SymmetricKey is the raw AES-256 key recovered from the embedded token.
type SymmetricKey []byte

// PlaintextAsset is the verified output of a decryption.
type PlaintextAsset struct {
	Data []byte
	MIME string
}

// Resource is a memory-backed displayable handle for a [PlaintextAsset].
// Locator is what gets assigned to a target's source attribute.
type Resource struct {
	ID        string
	Locator   string
	MIME      string
	Data      []byte
	CreatedAt time.Time
}

// Size returns the number of plaintext bytes held by the resource.
func (r Resource) Size() int {
	return len(r.Data)
}
