// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-asset-reveal/internal/app"
	"github.com/MKhiriev/go-asset-reveal/internal/config"
	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, baseURL string, sampleSize int) PayloadFetcher {
	t.Helper()

	f, err := NewHTTPPayloadFetcher(
		config.Adapter{BaseURL: baseURL},
		config.App{Version: "test", DiagnosticSampleSize: sampleSize},
		logger.Nop(),
	)
	require.NoError(t, err)
	return f
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestFetch_Success(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"iv":"AAECAwQFBgcICQoL","tag":"AAECAwQFBgcICQoLDA0ODw==","ciphertext":"aGVsbG8=","mime":" text/plain "}`))
	}))
	defer srv.Close()

	payload, err := newTestFetcher(t, srv.URL, 0).Fetch(context.Background(), "/assets/profile.enc.json")
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, payload.IV)
	assert.Len(t, payload.Tag, 16)
	assert.Equal(t, []byte("hello"), payload.Ciphertext)
	assert.Equal(t, "text/plain", payload.MIME)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/assets/profile.enc.json", got.URL.Path)
	assert.Contains(t, got.Header.Get("Cache-Control"), "no-cache")
	assert.Contains(t, got.Header.Get("Cache-Control"), "no-store")
	assert.Equal(t, "no-cache", got.Header.Get("Pragma"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "go-asset-reveal/test", got.Header.Get("User-Agent"))
}

func TestFetch_URLSafeUnpaddedFields(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0xfe, 0x3e, 0x3f}
	urlSafe := strings.TrimRight(base64.URLEncoding.EncodeToString(raw), "=")
	require.True(t, strings.ContainsAny(urlSafe, "-_"))

	body := `{"iv":"AAECAwQFBgcICQoL","tag":"AAECAwQFBgcICQoLDA0ODw","ciphertext":"` + urlSafe + `"}`
	srv := httptest.NewServer(respond(http.StatusOK, body))
	defer srv.Close()

	payload, err := newTestFetcher(t, srv.URL, 0).Fetch(context.Background(), "/asset")
	require.NoError(t, err)

	assert.Equal(t, raw, payload.Ciphertext)
	assert.Len(t, payload.Tag, 16)
	assert.Empty(t, payload.MIME)
}

func TestFetch_AbsoluteURLWithoutBase(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, `{"iv":"AA==","tag":"AA==","ciphertext":"AA=="}`))
	defer srv.Close()

	_, err := newTestFetcher(t, "", 0).Fetch(context.Background(), srv.URL+"/asset")
	require.NoError(t, err)
}

func TestFetch_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(tt.status, "nope"))
			defer srv.Close()

			_, err := newTestFetcher(t, srv.URL, 0).Fetch(context.Background(), "/asset")
			require.Error(t, err)
			assert.ErrorIs(t, err, app.ErrTransport)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, app.ErrFormat)
		})
	}
}

func TestFetch_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusTeapot, ""))
	defer srv.Close()

	_, err := newTestFetcher(t, srv.URL, 0).Fetch(context.Background(), "/asset")
	require.ErrorIs(t, err, app.ErrTransport)
	assert.Contains(t, err.Error(), "418")
}

func TestFetch_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "{}"))
	url := srv.URL
	srv.Close()

	_, err := newTestFetcher(t, url, 0).Fetch(context.Background(), "/asset")
	require.ErrorIs(t, err, app.ErrTransport)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f, err := NewHTTPPayloadFetcher(
		config.Adapter{BaseURL: srv.URL, RequestTimeout: 50 * time.Millisecond},
		config.App{},
		logger.Nop(),
	)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), "/asset")
	require.ErrorIs(t, err, app.ErrTransport)
}

func TestFetch_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "{}"))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestFetcher(t, srv.URL, 0).Fetch(ctx, "/asset")
	require.ErrorIs(t, err, app.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetch_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "html", body: "<html>oops</html>", wantErr: ErrMalformedDocument},
		{name: "truncated json", body: `{"iv":"AA==`, wantErr: ErrMalformedDocument},
		{name: "empty body", body: "", wantErr: ErrMalformedDocument},
		{name: "trailing markup", body: `{"iv":"AA==","tag":"AA==","ciphertext":"AA=="} <html>oops</html>`, wantErr: ErrMalformedDocument},
		{name: "second document", body: `{"iv":"AA==","tag":"AA==","ciphertext":"AA=="}{}`, wantErr: ErrMalformedDocument},
		{name: "missing iv", body: `{"tag":"AA==","ciphertext":"AA=="}`, wantErr: ErrMissingField},
		{name: "missing tag", body: `{"iv":"AA==","ciphertext":"AA=="}`, wantErr: ErrMissingField},
		{name: "missing ciphertext", body: `{"iv":"AA==","tag":"AA=="}`, wantErr: ErrMissingField},
		{name: "blank field", body: `{"iv":"  ","tag":"AA==","ciphertext":"AA=="}`, wantErr: ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(http.StatusOK, tt.body))
			defer srv.Close()

			_, err := newTestFetcher(t, srv.URL, 0).Fetch(context.Background(), "/asset")
			require.Error(t, err)
			assert.ErrorIs(t, err, app.ErrFormat)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, app.ErrTransport)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.body, formatErr.Sample)
			assert.Equal(t, len(tt.body), formatErr.BodySize)
		})
	}
}

func TestFetch_UndecodableField(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, `{"iv":"!!!","tag":"AA==","ciphertext":"AA=="}`))
	defer srv.Close()

	_, err := newTestFetcher(t, srv.URL, 0).Fetch(context.Background(), "/asset")
	require.ErrorIs(t, err, app.ErrFormat)
	assert.Contains(t, err.Error(), "field iv")
}

func TestFetch_SampleIsBounded(t *testing.T) {
	body := strings.Repeat("x", 1000)
	srv := httptest.NewServer(respond(http.StatusOK, body))
	defer srv.Close()

	_, err := newTestFetcher(t, srv.URL, 16).Fetch(context.Background(), "/asset")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, strings.Repeat("x", 16), formatErr.Sample)
	assert.Equal(t, 1000, formatErr.BodySize)
}

func TestNewHTTPPayloadFetcher_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPPayloadFetcher(config.Adapter{BaseURL: "http://"}, config.App{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://example.org/", want: "https://example.org"},
		{in: " https://example.org/site/ ", want: "https://example.org/site"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBodySample(t *testing.T) {
	assert.Equal(t, "", bodySample([]byte("abc"), 0))
	assert.Equal(t, "ab", bodySample([]byte("abc"), 2))
	assert.Equal(t, "abc", bodySample([]byte("abc"), 10))
	// cut inside a multi-byte rune
	assert.Equal(t, "a�", bodySample([]byte("aé"), 2))
}
