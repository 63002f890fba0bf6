// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
	"github.com/MKhiriev/go-asset-reveal/models"
)

type resourceService struct {
	resources store.ResourceStore

	logger *logger.Logger
}

func NewResourceService(resources store.ResourceStore, logger *logger.Logger) ResourceService {
	return &resourceService{resources: resources, logger: logger}
}

// Open returns the live resource addressed by locator. Released and unknown
// locators yield [ErrResourceUnavailable].
func (s *resourceService) Open(ctx context.Context, locator string) (models.Resource, error) {
	resource, err := s.resources.Get(locator)
	if err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return resource, nil
}
