// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("1.0.0")

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("1.0.0")
	client2 := NewHTTPClient("1.0.0")

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "explicit version", version: "1.2.3", want: "go-asset-reveal/1.2.3"},
		{name: "empty version", version: "", want: "go-asset-reveal/dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("User-Agent")
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			_, err := NewHTTPClient(tt.version).R().Get(srv.URL)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
