// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
)

// NormalizeBase64 rewrites s into the canonical padded standard base-64
// alphabet: whitespace is dropped, the URL-safe characters '-' and '_' become
// '+' and '/', and '=' is appended until the length is a multiple of four.
func NormalizeBase64(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 3)

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '-':
			b.WriteByte('+')
		case r == '_':
			b.WriteByte('/')
		default:
			b.WriteRune(r)
		}
	}

	for b.Len()%4 != 0 {
		b.WriteByte('=')
	}

	return b.String()
}

// DecodeBase64 decodes s after passing it through [NormalizeBase64], so the
// standard and URL-safe alphabets, padded or not, decode to the same bytes.
func DecodeBase64(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(NormalizeBase64(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	return out, nil
}
