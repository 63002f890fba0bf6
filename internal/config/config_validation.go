// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] can drive a reveal.
func (cfg *StructuredConfig) validate() error {
	selector := strings.TrimSpace(cfg.App.TargetSelector)
	if len(selector) < 2 || (selector[0] != '#' && selector[0] != '.') {
		return fmt.Errorf("%w: target selector %q must be #id or .class", ErrInvalidAppConfigs, cfg.App.TargetSelector)
	}
	if cfg.App.DiagnosticSampleSize < 0 {
		return fmt.Errorf("%w: negative diagnostic sample size", ErrInvalidAppConfigs)
	}

	assetURL := strings.TrimSpace(cfg.Adapter.AssetURL)
	if assetURL == "" {
		return fmt.Errorf("%w: empty asset url", ErrInvalidAdapterConfigs)
	}
	u, err := url.Parse(assetURL)
	if err != nil {
		return fmt.Errorf("%w: asset url: %w", ErrInvalidAdapterConfigs, err)
	}
	if !u.IsAbs() && strings.TrimSpace(cfg.Adapter.BaseURL) == "" {
		return fmt.Errorf("%w: relative asset url %q requires a base url", ErrInvalidAdapterConfigs, assetURL)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	return nil
}
