// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/page"
	"github.com/MKhiriev/go-asset-reveal/internal/service"
)

// RevealWorker runs the reveal pipeline once per document, as soon as the
// document is past loading.
type RevealWorker struct {
	revealer service.Revealer
	doc      *page.Document

	once sync.Once
	done chan struct{}

	logger *logger.Logger
}

func NewRevealWorker(revealer service.Revealer, doc *page.Document, logger *logger.Logger) *RevealWorker {
	return &RevealWorker{
		revealer: revealer,
		doc:      doc,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run schedules the reveal. A document that is still loading gets a one-shot
// readiness listener; otherwise the reveal starts right away. Either way the
// pipeline runs on its own goroutine. Calls after the first are no-ops.
func (w *RevealWorker) Run(ctx context.Context) {
	w.once.Do(func() {
		start := func() { go w.reveal(ctx) }

		if w.doc.OnReady(start) {
			w.logger.Debug().Msg("reveal deferred until document is ready")
			return
		}
		w.logger.Debug().Msg("document already ready, reveal started")
	})
}

// Done is closed once the reveal has finished.
func (w *RevealWorker) Done() <-chan struct{} {
	return w.done
}

func (w *RevealWorker) reveal(ctx context.Context) {
	defer close(w.done)
	w.revealer.Run(ctx, w.doc)
}
