// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/service"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
	"github.com/MKhiriev/go-asset-reveal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAppInfoService struct {
	build models.BuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.build.Version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return m.build
}

type mockRevealer struct {
	service.Revealer

	last *models.RevealResult
}

func (m *mockRevealer) LastResult() (models.RevealResult, bool) {
	if m.last == nil {
		return models.RevealResult{}, false
	}
	return *m.last, true
}

// newTestServices returns services backed by a real in-memory resource
// store, so tests can create resources and dereference them over HTTP.
func newTestServices(t *testing.T, last *models.RevealResult) (*service.Services, store.ResourceStore) {
	t.Helper()

	resources := store.NewMemoryResourceStore(logger.Nop())
	return &service.Services{
		Revealer:        &mockRevealer{last: last},
		ResourceService: service.NewResourceService(resources, logger.Nop()),
		AppInfoService:  &mockAppInfoService{build: models.NewBuildInfo("1.2.3", "2026-10-01", "abc123")},
	}, resources
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.traceIDs)
}
