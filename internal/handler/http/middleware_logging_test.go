// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
)

// accessEntries returns the decoded access log lines written to buf.
func accessEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry["message"] == "request served" {
			out = append(out, entry)
		}
	}
	return out
}

func TestWithLogging_BlobRequest(t *testing.T) {
	buf := new(bytes.Buffer)
	services, resources := newTestServices(t, nil)
	router := NewHandler(services, logger.New(buf, "test")).Init()

	res, err := resources.Create([]byte("hello"), "text/plain")
	require.NoError(t, err)
	id, _ := store.ParseLocator(res.Locator)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blob/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entries := accessEntries(t, buf)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/blob/"+id, entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.Equal(t, "/blob/{id}", entry["route"])
	assert.Equal(t, rec.Header().Get(traceIDHeader), entry["trace_id"])
	assert.Contains(t, entry, "duration")
}

func TestWithLogging_ReleasedBlobLogsWarn(t *testing.T) {
	buf := new(bytes.Buffer)
	services, resources := newTestServices(t, nil)
	router := NewHandler(services, logger.New(buf, "test")).Init()

	res, err := resources.Create([]byte("hello"), "image/png")
	require.NoError(t, err)
	require.True(t, resources.Release(res.Locator))
	id, _ := store.ParseLocator(res.Locator)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blob/"+id, nil))

	entries := accessEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.EqualValues(t, http.StatusNotFound, entries[0]["status"])
	assert.Equal(t, "/blob/"+id, entries[0]["uri"])
}

func TestWithLogging_CallerTraceIDIsKept(t *testing.T) {
	buf := new(bytes.Buffer)
	services, _ := newTestServices(t, nil)
	router := NewHandler(services, logger.New(buf, "test")).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "reveal-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	entries := accessEntries(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "reveal-42", entries[0]["trace_id"])
	assert.Equal(t, "/api/version", entries[0]["route"])
}

func TestWithLogging_StatusWithoutExplicitHeader(t *testing.T) {
	buf := new(bytes.Buffer)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
	withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := accessEntries(t, buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusOK, entries[0]["status"])
	assert.EqualValues(t, 0, entries[0]["size"])
	assert.NotContains(t, entries[0], "route")
}

func TestAccessLevel(t *testing.T) {
	tests := []struct {
		status int
		want   zerolog.Level
	}{
		{status: http.StatusOK, want: zerolog.InfoLevel},
		{status: http.StatusNotModified, want: zerolog.InfoLevel},
		{status: http.StatusNotFound, want: zerolog.WarnLevel},
		{status: http.StatusInternalServerError, want: zerolog.ErrorLevel},
		{status: http.StatusServiceUnavailable, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, accessLevel(tt.status))
		})
	}
}
