// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":                "1.2.3",
		"APP_TARGET_SELECTOR":        ".avatar",
		"APP_SURFACE_ERRORS":         "true",
		"APP_DIAGNOSTIC_SAMPLE_SIZE": "64",

		"ADAPTER_BASE_URL":        "https://example.org",
		"ADAPTER_ASSET_URL":       "assets/me.enc.json",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_SHUTDOWN_TIMEOUT": "3s",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, ".avatar", cfg.App.TargetSelector)
	assert.True(t, cfg.App.SurfaceErrors)
	assert.Equal(t, 64, cfg.App.DiagnosticSampleSize)

	assert.Equal(t, "https://example.org", cfg.Adapter.BaseURL)
	assert.Equal(t, "assets/me.enc.json", cfg.Adapter.AssetURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "bad duration", vars: map[string]string{"ADAPTER_REQUEST_TIMEOUT": "soon"}},
		{name: "bad bool", vars: map[string]string{"APP_SURFACE_ERRORS": "maybe"}},
		{name: "bad int", vars: map[string]string{"APP_DIAGNOSTIC_SAMPLE_SIZE": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			err := parseEnv(&StructuredConfig{})
			assert.Error(t, err)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_TARGET_SELECTOR",
		"APP_SURFACE_ERRORS",
		"APP_DIAGNOSTIC_SAMPLE_SIZE",

		"ADAPTER_BASE_URL",
		"ADAPTER_ASSET_URL",
		"ADAPTER_REQUEST_TIMEOUT",

		"SERVER_ADDRESS",
		"SERVER_SHUTDOWN_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
