// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-asset-reveal/internal/adapter"
	"github.com/MKhiriev/go-asset-reveal/internal/config"
	"github.com/MKhiriev/go-asset-reveal/internal/crypto"
	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
	"github.com/MKhiriev/go-asset-reveal/models"
)

type Services struct {
	Revealer        Revealer
	ResourceService ResourceService
	AppInfoService  AppInfoService
}

// Pipeline groups the components a [Revealer] is built from.
type Pipeline struct {
	Unveiler  crypto.KeyUnveiler
	Fetcher   adapter.PayloadFetcher
	Decryptor crypto.Decryptor
}

func NewServices(storages *store.Storages, pipeline Pipeline, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	revealer, err := NewRevealer(
		pipeline.Unveiler,
		pipeline.Fetcher,
		pipeline.Decryptor,
		storages.ResourceStore,
		RevealOptions{
			TargetSelector: cfg.App.TargetSelector,
			AssetURL:       cfg.Adapter.AssetURL,
			SurfaceErrors:  cfg.App.SurfaceErrors,
		},
		logger.GetChildLogger(),
	)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Revealer:        revealer,
		ResourceService: NewResourceService(storages.ResourceStore, logger),
		AppInfoService:  appInfo,
	}, nil
}
