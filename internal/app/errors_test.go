// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "configuration", err: fmt.Errorf("unveil: %w", ErrConfiguration), want: "configuration"},
		{name: "transport", err: fmt.Errorf("fetch: %w", ErrTransport), want: "transport"},
		{name: "format", err: fmt.Errorf("%w: %w", ErrFormat, errors.New("bad json")), want: "format"},
		{name: "integrity", err: fmt.Errorf("open: %w", ErrIntegrity), want: "integrity"},
		{name: "unknown", err: errors.New("boom"), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
