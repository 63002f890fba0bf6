// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a status sentinel otherwise.
// At most sampleSize bytes of the body are included in the message.
func mapHTTPError(resp *resty.Response, sampleSize int) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(bodySample(resp.Body(), sampleSize))
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerError, status, body)
	default:
		return fmt.Errorf("http %d: %s", status, body)
	}
}

// bodySample returns the first limit bytes of body as valid UTF-8.
func bodySample(body []byte, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(body) > limit {
		body = body[:limit]
	}
	return strings.ToValidUTF8(string(body), "�")
}
