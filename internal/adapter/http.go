// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-asset-reveal/internal/app"
	"github.com/MKhiriev/go-asset-reveal/internal/config"
	"github.com/MKhiriev/go-asset-reveal/internal/crypto"
	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/utils"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// DefaultSampleSize bounds the body sample kept for diagnostics when the
// configuration leaves it unset.
const DefaultSampleSize = 256

type httpPayloadFetcher struct {
	client     *utils.HTTPClient
	sampleSize int

	logger *logger.Logger
}

// NewHTTPPayloadFetcher constructs the resty-backed [PayloadFetcher].
// adapterCfg.BaseURL, when set, is normalised and used to resolve relative
// asset URLs; adapterCfg.RequestTimeout of zero means no deadline.
//
// Returns an error if adapterCfg.BaseURL is set but cannot be parsed.
func NewHTTPPayloadFetcher(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (PayloadFetcher, error) {
	client := utils.NewHTTPClient(appCfg.Version)

	if strings.TrimSpace(adapterCfg.BaseURL) != "" {
		baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid adapter base url: %w", err)
		}
		client.SetBaseURL(baseURL)
	}
	client.SetTimeout(adapterCfg.RequestTimeout)

	sampleSize := appCfg.DiagnosticSampleSize
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	return &httpPayloadFetcher{client: client, sampleSize: sampleSize, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [PayloadFetcher]. The request always asks intermediaries
// to revalidate so a stale copy of the asset is never decrypted.
func (f *httpPayloadFetcher) Fetch(ctx context.Context, assetURL string) (models.EncryptedPayload, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache, no-store, max-age=0").
		SetHeader("Pragma", "no-cache").
		Get(assetURL)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: fetch %s: %w", app.ErrTransport, assetURL, err)
	}
	if err = mapHTTPError(resp, f.sampleSize); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: fetch %s: %w", app.ErrTransport, assetURL, err)
	}

	body := resp.Body()
	f.logger.Debug().
		Str("url", assetURL).
		Int("status", resp.StatusCode()).
		Int("size", len(body)).
		Msg("payload received")

	payload, err := decodePayload(body)
	if err != nil {
		return models.EncryptedPayload{}, &FormatError{
			Sample:   bodySample(body, f.sampleSize),
			BodySize: len(body),
			Err:      err,
		}
	}

	return payload, nil
}

// decodePayload parses a [models.PayloadDocument] and transcodes its binary
// fields. iv, tag and ciphertext are required; mime is optional.
func decodePayload(body []byte) (models.EncryptedPayload, error) {
	var doc models.PayloadDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	iv, err := decodeField("iv", doc.IV)
	if err != nil {
		return models.EncryptedPayload{}, err
	}
	tag, err := decodeField("tag", doc.Tag)
	if err != nil {
		return models.EncryptedPayload{}, err
	}
	ciphertext, err := decodeField("ciphertext", doc.Ciphertext)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	return models.EncryptedPayload{
		IV:         iv,
		Tag:        tag,
		Ciphertext: ciphertext,
		MIME:       strings.TrimSpace(doc.MIME),
	}, nil
}

func decodeField(name, value string) ([]byte, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	out, err := crypto.DecodeBase64(value)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	return out, nil
}
