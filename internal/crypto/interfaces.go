// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto recovers the embedded asset key and performs authenticated
// decryption of encrypted asset payloads.
//
// The embedded key is obfuscated, not protected: anyone who can read the
// page or binary can recover it by running [KeyUnveiler.Unveil]. The
// obfuscation is reproduced only for compatibility with already published
// payloads and must not be treated as a security boundary.
package crypto

import "github.com/MKhiriev/go-asset-reveal/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyUnveiler recovers the symmetric key from its embedded representation.
type KeyUnveiler interface {
	// Unveil decodes the embedded token and returns the 32-byte key.
	// Returns an error wrapping app.ErrConfiguration if the token is not
	// valid base-64, does not reverse into a hex string, or does not yield
	// exactly 32 bytes.
	Unveil() (models.SymmetricKey, error)
}

// Decryptor opens AES-256-GCM encrypted payloads.
type Decryptor interface {
	// Decrypt verifies and decrypts payload with key. No plaintext is
	// returned unless the authentication tag verifies.
	//
	// Returns an error wrapping app.ErrConfiguration for malformed key,
	// nonce or tag lengths, and app.ErrIntegrity when verification fails.
	Decrypt(key models.SymmetricKey, payload models.EncryptedPayload) (models.PlaintextAsset, error)
}
