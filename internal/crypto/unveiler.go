// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-asset-reveal/internal/app"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// keyUnveiler is the private implementation of [KeyUnveiler].
type keyUnveiler struct {
	token string
}

// NewKeyUnveiler returns a [KeyUnveiler] for the given embedded token.
//
// Token layout: base64( reverse( hex(key) ) ).
func NewKeyUnveiler(token string) KeyUnveiler {
	return &keyUnveiler{token: token}
}

// Unveil implements [KeyUnveiler].
func (u *keyUnveiler) Unveil() (models.SymmetricKey, error) {
	decoded, err := DecodeBase64(u.token)
	if err != nil {
		return nil, fmt.Errorf("%w: decode embedded key: %w", app.ErrConfiguration, err)
	}

	key, err := hex.DecodeString(string(reverseBytes(decoded)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", app.ErrConfiguration, ErrInvalidKeyEncoding, err)
	}

	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %w: got %d bytes, want %d", app.ErrConfiguration, ErrInvalidKeyLength, len(key), KeySize)
	}

	return key, nil
}

// ObfuscateKey produces the embedded token for key. It is the inverse of
// [KeyUnveiler.Unveil] and is used by build tooling to inject the token via
// linker flags.
func ObfuscateKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(reverseBytes([]byte(hex.EncodeToString(key))))
}

// reverseBytes returns a reversed copy of b. The decoded token is plain
// ASCII hex, so byte order and character order coincide.
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
