// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-asset-reveal/internal/config"
	"github.com/MKhiriev/go-asset-reveal/internal/handler"
	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/page"
	"github.com/MKhiriev/go-asset-reveal/internal/server"
	"github.com/MKhiriev/go-asset-reveal/internal/service"
	"github.com/MKhiriev/go-asset-reveal/internal/workers"
	"github.com/MKhiriev/go-asset-reveal/models"
)

type App struct {
	services *service.Services

	doc    *page.Document
	target *page.Element
	reveal *workers.RevealWorker
	server server.Server

	logger *logger.Logger
}

func NewApp(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*App, error) {
	doc, target, err := NewPage(cfg.App.TargetSelector)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	app := &App{
		services: services,
		doc:      doc,
		target:   target,
		reveal:   workers.NewRevealWorker(services.Revealer, doc, logger),
		logger:   logger,
	}

	if cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, cfg.Server, logger)
		if err != nil {
			return nil, fmt.Errorf("create handlers: %w", err)
		}
		app.server, err = server.NewServer(handlers, cfg.Server, logger)
		if err != nil {
			return nil, fmt.Errorf("create server: %w", err)
		}
	}

	return app, nil
}

// Run loads the page, waits for the reveal and then serves until ctx is
// cancelled. Without a server it returns as soon as the reveal finished.
// The target is torn down before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer a.target.Teardown()

	a.target.SetOnLoad(func(locator string) {
		a.logger.Info().Str("locator", locator).Msg("target source updated")
	})

	workers.NewWorkers(a.reveal).Run(ctx)
	a.doc.SetReadyState(page.Interactive)

	// the fetch observes ctx, so cancellation ends the wait promptly
	<-a.reveal.Done()
	a.doc.SetReadyState(page.Complete)

	if result, ok := a.services.Revealer.LastResult(); ok {
		a.logger.Info().
			Str("stage", string(result.Stage)).
			Str("locator", result.Locator).
			Msg("reveal finished")
	}

	if a.server == nil {
		return nil
	}
	return a.server.RunServer(ctx)
}

// Result returns the outcome of the reveal, if it has run.
func (a *App) Result() (models.RevealResult, bool) {
	return a.services.Revealer.LastResult()
}

// Target returns the element receiving the revealed resource.
func (a *App) Target() *page.Element {
	return a.target
}
