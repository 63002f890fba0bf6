// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultMIME is the media type assumed when a payload does not declare one.
const DefaultMIME = "image/jpeg"

// PayloadDocument is the wire shape of the encrypted asset served by the
// asset endpoint. Binary fields are base-64 text and may use the URL-safe
// alphabet, contain whitespace, or omit padding.
type PayloadDocument struct {
	IV         string `json:"iv"`
	Tag        string `json:"tag"`
	Ciphertext string `json:"ciphertext"`
	MIME       string `json:"mime,omitempty"`
}

// EncryptedPayload is a decoded [PayloadDocument]. A fresh value is built for
// every fetch and is never cached.
type EncryptedPayload struct {
	// IV is the AES-GCM nonce.
	IV []byte
	// Tag is the 16-byte GCM authentication tag.
	Tag []byte
	// Ciphertext is the encrypted asset without the tag.
	Ciphertext []byte
	// MIME is the declared media type, possibly empty.
	MIME string
}

// AuthenticatedCiphertext returns ciphertext ‖ tag, the combined input the
// AEAD open operation expects. The receiver's slices are not modified.
func (p EncryptedPayload) AuthenticatedCiphertext() []byte {
	out := make([]byte, 0, len(p.Ciphertext)+len(p.Tag))
	out = append(out, p.Ciphertext...)
	return append(out, p.Tag...)
}

// MediaType returns the declared media type or [DefaultMIME].
func (p EncryptedPayload) MediaType() string {
	if p.MIME == "" {
		return DefaultMIME
	}
	return p.MIME
}
