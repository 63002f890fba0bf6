// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/utils"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// LocatorScheme prefixes every resource locator.
const LocatorScheme = "blob:"

// memoryResourceStore is the default [ResourceStore]. Resources are keyed by
// their ID; the locator is LocatorScheme followed by the ID.
type memoryResourceStore struct {
	mu        sync.RWMutex
	resources map[string]models.Resource
	ids       *utils.UUIDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

func NewMemoryResourceStore(logger *logger.Logger) ResourceStore {
	return &memoryResourceStore{
		resources: make(map[string]models.Resource),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *memoryResourceStore) Create(data []byte, mime string) (models.Resource, error) {
	if len(data) == 0 {
		return models.Resource{}, ErrEmptyResource
	}

	id := s.ids.Generate()
	resource := models.Resource{
		ID:        id,
		Locator:   LocatorScheme + id,
		MIME:      mime,
		Data:      slices.Clone(data),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.resources[id] = resource
	s.mu.Unlock()

	s.logger.Debug().
		Str("locator", resource.Locator).
		Str("mime", mime).
		Int("size", resource.Size()).
		Msg("resource created")

	return resource, nil
}

func (s *memoryResourceStore) Get(locator string) (models.Resource, error) {
	id, ok := ParseLocator(locator)
	if !ok {
		return models.Resource{}, fmt.Errorf("%w: %q", ErrResourceNotFound, locator)
	}

	s.mu.RLock()
	resource, ok := s.resources[id]
	s.mu.RUnlock()

	if !ok {
		return models.Resource{}, fmt.Errorf("%w: %s", ErrResourceNotFound, locator)
	}
	return resource, nil
}

func (s *memoryResourceStore) Release(locator string) bool {
	id, ok := ParseLocator(locator)
	if !ok {
		return false
	}

	s.mu.Lock()
	_, held := s.resources[id]
	delete(s.resources, id)
	s.mu.Unlock()

	if held {
		s.logger.Debug().Str("locator", locator).Msg("resource released")
	}
	return held
}

func (s *memoryResourceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.resources)
}

// ParseLocator returns the resource ID carried by a "blob:" locator.
func ParseLocator(locator string) (string, bool) {
	id, ok := strings.CutPrefix(locator, LocatorScheme)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
