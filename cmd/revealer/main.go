// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-asset-reveal/internal/adapter"
	"github.com/MKhiriev/go-asset-reveal/internal/client"
	"github.com/MKhiriev/go-asset-reveal/internal/config"
	"github.com/MKhiriev/go-asset-reveal/internal/crypto"
	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/service"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// Injected with -ldflags "-X main.obfuscatedKey=... -X main.buildVersion=...".
var (
	obfuscatedKey string

	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("revealer")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	fetcher, err := adapter.NewHTTPPayloadFetcher(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create payload fetcher")
	}

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, service.Pipeline{
		Unveiler:  crypto.NewKeyUnveiler(obfuscatedKey),
		Fetcher:   fetcher,
		Decryptor: crypto.NewDecryptor(),
	}, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	app, err := client.NewApp(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init revealer app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("revealer run error")
	}
}
