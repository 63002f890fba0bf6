// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds pipeline behaviour: target selection and failure policy.
	App App `envPrefix:"APP_"`

	// Adapter holds the asset endpoint location and fetch settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the resource server settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings of the reveal pipeline.
type App struct {
	// Version is reported by the version endpoint and the User-Agent header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TargetSelector identifies the page element that receives the
	// revealed resource, as "#id" or ".class".
	// Env: APP_TARGET_SELECTOR
	TargetSelector string `env:"TARGET_SELECTOR"`

	// SurfaceErrors makes a failed reveal return its error to the caller
	// and fire the target's error callback. When false (the default)
	// failures are only logged and the target is left untouched.
	// Env: APP_SURFACE_ERRORS
	SurfaceErrors bool `env:"SURFACE_ERRORS"`

	// DiagnosticSampleSize bounds how many bytes of an unparseable payload
	// body are kept for diagnostics.
	// Env: APP_DIAGNOSTIC_SAMPLE_SIZE
	DiagnosticSampleSize int `env:"DIAGNOSTIC_SAMPLE_SIZE"`
}

// Adapter holds the settings of the payload fetcher.
type Adapter struct {
	// BaseURL resolves relative asset URLs (e.g. "https://example.org").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AssetURL is the location of the encrypted payload document.
	// Env: ADAPTER_ASSET_URL
	AssetURL string `env:"ASSET_URL"`

	// RequestTimeout bounds the payload fetch. Zero means no deadline.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds settings of the HTTP server that dereferences resource
// locators.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on. Empty disables
	// the server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Defaults used when no source sets a value.
const (
	DefaultTargetSelector       = "#profile-photo"
	DefaultAssetURL             = "assets/profile.enc.json"
	DefaultDiagnosticSampleSize = 256
	DefaultShutdownTimeout      = 5 * time.Second
	DefaultDotEnvPath           = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TargetSelector:       DefaultTargetSelector,
			DiagnosticSampleSize: DefaultDiagnosticSampleSize,
		},
		Adapter: Adapter{
			AssetURL: DefaultAssetURL,
		},
		Server: Server{
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		build()
}
