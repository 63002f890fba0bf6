// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty-backed client that identifies
// itself as go-asset-reveal/<version>. Resty does not cache responses, so
// every request reaches the network.
func NewHTTPClient(version string) *HTTPClient {
	if version == "" {
		version = "dev"
	}

	client := resty.New().
		SetHeader("User-Agent", "go-asset-reveal/"+version)

	return &HTTPClient{Client: client}
}
