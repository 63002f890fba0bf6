// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/MKhiriev/go-asset-reveal/internal/app"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// AES-256-GCM sizes.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)

type gcmDecryptor struct{}

// NewDecryptor returns the AES-256-GCM [Decryptor].
func NewDecryptor() Decryptor {
	return &gcmDecryptor{}
}

// Decrypt implements [Decryptor]. The tag is appended to the ciphertext and
// the combined buffer is handed to [cipher.AEAD.Open], which verifies the tag
// before producing any output.
func (d *gcmDecryptor) Decrypt(key models.SymmetricKey, payload models.EncryptedPayload) (models.PlaintextAsset, error) {
	if len(key) != KeySize {
		return models.PlaintextAsset{}, fmt.Errorf("%w: %w: got %d bytes", app.ErrConfiguration, ErrInvalidKeyLength, len(key))
	}
	if len(payload.IV) != NonceSize {
		return models.PlaintextAsset{}, fmt.Errorf("%w: %w: got %d bytes", app.ErrConfiguration, ErrInvalidNonceLength, len(payload.IV))
	}
	if len(payload.Tag) != TagSize {
		return models.PlaintextAsset{}, fmt.Errorf("%w: %w: got %d bytes", app.ErrConfiguration, ErrInvalidTagLength, len(payload.Tag))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return models.PlaintextAsset{}, fmt.Errorf("%w: create cipher: %w", app.ErrConfiguration, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.PlaintextAsset{}, fmt.Errorf("%w: create gcm: %w", app.ErrConfiguration, err)
	}

	plain, err := gcm.Open(nil, payload.IV, payload.AuthenticatedCiphertext(), nil)
	if err != nil {
		return models.PlaintextAsset{}, fmt.Errorf("%w: %w", app.ErrIntegrity, err)
	}

	return models.PlaintextAsset{Data: plain, MIME: payload.MediaType()}, nil
}
