// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/page"
	"github.com/MKhiriev/go-asset-reveal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRevealer struct {
	service.Revealer

	runs atomic.Int32
	doc  atomic.Pointer[service.Document]
}

func (c *countingRevealer) Run(_ context.Context, doc service.Document) {
	c.runs.Add(1)
	c.doc.Store(&doc)
}

func waitDone(t *testing.T, w *RevealWorker) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reveal did not finish")
	}
}

func TestRevealWorker_WaitsForReadiness(t *testing.T) {
	doc := page.NewDocument()
	r := &countingRevealer{}
	w := NewRevealWorker(r, doc, logger.Nop())

	w.Run(context.Background())

	assert.Equal(t, 1, doc.PendingListeners())
	select {
	case <-w.Done():
		t.Fatal("reveal must not start while loading")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, int32(0), r.runs.Load())

	doc.SetReadyState(page.Interactive)
	waitDone(t, w)

	assert.Equal(t, int32(1), r.runs.Load())
	require.NotNil(t, r.doc.Load())
	assert.Equal(t, service.Document(doc), *r.doc.Load())
}

func TestRevealWorker_StartsImmediatelyWhenReady(t *testing.T) {
	doc := page.NewDocument()
	doc.SetReadyState(page.Complete)
	r := &countingRevealer{}
	w := NewRevealWorker(r, doc, logger.Nop())

	w.Run(context.Background())

	assert.Equal(t, 0, doc.PendingListeners(), "no listener is registered once ready")
	waitDone(t, w)
	assert.Equal(t, int32(1), r.runs.Load())
}

func TestRevealWorker_RunsOncePerDocument(t *testing.T) {
	doc := page.NewDocument()
	r := &countingRevealer{}
	w := NewRevealWorker(r, doc, logger.Nop())

	w.Run(context.Background())
	w.Run(context.Background())
	assert.Equal(t, 1, doc.PendingListeners())

	doc.SetReadyState(page.Interactive)
	doc.SetReadyState(page.Complete)
	waitDone(t, w)

	assert.Equal(t, int32(1), r.runs.Load())
}
