// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-asset-reveal/internal/adapter"
	"github.com/MKhiriev/go-asset-reveal/internal/app"
	"github.com/MKhiriev/go-asset-reveal/internal/crypto"
	"github.com/MKhiriev/go-asset-reveal/internal/logger"
	"github.com/MKhiriev/go-asset-reveal/internal/store"
	"github.com/MKhiriev/go-asset-reveal/models"
)

// RevealOptions configures a [Revealer].
type RevealOptions struct {
	// TargetSelector locates the target for RevealIn and Run.
	TargetSelector string
	// AssetURL is passed verbatim to the payload fetcher.
	AssetURL string
	// SurfaceErrors returns failures to the caller and fires the target's
	// error callback. Otherwise failures are only logged.
	SurfaceErrors bool
}

type revealer struct {
	unveiler  crypto.KeyUnveiler
	fetcher   adapter.PayloadFetcher
	decryptor crypto.Decryptor
	resources store.ResourceStore
	opts      RevealOptions

	mu    sync.Mutex
	bound map[Target]string
	last  *models.RevealResult

	now    func() time.Time
	logger *logger.Logger
}

// NewRevealer wires the pipeline components together. Every run reads the
// key and payload afresh; the only state kept between runs is which
// resource is bound to which target.
func NewRevealer(
	unveiler crypto.KeyUnveiler,
	fetcher adapter.PayloadFetcher,
	decryptor crypto.Decryptor,
	resources store.ResourceStore,
	opts RevealOptions,
	logger *logger.Logger,
) (Revealer, error) {
	if strings.TrimSpace(opts.AssetURL) == "" {
		return nil, fmt.Errorf("%w: %w", app.ErrConfiguration, ErrAssetURLIsNotSet)
	}

	return &revealer{
		unveiler:  unveiler,
		fetcher:   fetcher,
		decryptor: decryptor,
		resources: resources,
		opts:      opts,
		bound:     make(map[Target]string),
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (r *revealer) Reveal(ctx context.Context, target Target) (models.RevealResult, error) {
	return r.execute(ctx, func() (Target, error) {
		return usable(target)
	})
}

func (r *revealer) RevealIn(ctx context.Context, doc Document) (models.RevealResult, error) {
	return r.execute(ctx, func() (Target, error) {
		if doc == nil {
			return nil, ErrTargetNotFound
		}
		el, err := doc.QuerySelector(r.opts.TargetSelector)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTargetNotFound, err)
		}
		return usable(el)
	})
}

func (r *revealer) Run(ctx context.Context, doc Document) {
	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("%w: %v", ErrRevealPanicked, p)
			r.logger.Error().Err(err).Msg("reveal aborted")
			r.setLast(models.RevealResult{
				Stage:    models.StageFailed,
				FailedAt: models.StageFailed,
				Kind:     app.Kind(err),
				Error:    err.Error(),
			})
		}
	}()

	_, _ = r.RevealIn(ctx, doc)
}

func (r *revealer) Release(target Target) bool {
	if target == nil {
		return false
	}

	r.mu.Lock()
	locator, ok := r.bound[target]
	delete(r.bound, target)
	r.mu.Unlock()

	if !ok {
		return false
	}
	if target.Source() == locator {
		target.SetSource("")
	}
	return r.resources.Release(locator)
}

func (r *revealer) LastResult() (models.RevealResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return models.RevealResult{}, false
	}
	return *r.last, true
}

func (r *revealer) execute(ctx context.Context, locate func() (Target, error)) (models.RevealResult, error) {
	started := r.now()

	target, resource, err := r.run(ctx, locate)
	result := models.RevealResult{Duration: r.now().Sub(started)}

	if err == nil {
		result.Stage = models.StageDone
		result.Locator = resource.Locator
		result.MIME = resource.MIME
		result.Size = resource.Size()
		r.setLast(result)

		r.logger.WithStage(string(models.StageDone)).Info().
			Str("locator", resource.Locator).
			Str("mime", resource.MIME).
			Int("size", resource.Size()).
			Dur("duration", result.Duration).
			Msg("asset revealed")
		return result, nil
	}

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		stageErr = &StageError{Stage: models.StageFailed, Err: err}
	}
	result.Stage = models.StageFailed
	result.FailedAt = stageErr.Stage
	result.Kind = app.Kind(err)
	result.Error = err.Error()
	r.setLast(result)

	r.logFailure(stageErr, result)

	if !r.opts.SurfaceErrors {
		return result, nil
	}
	if target != nil {
		target.NotifyError(err)
	}
	return result, err
}

// run walks the stage sequence. The returned target is nil when it could
// not be located. A panic in any stage is reported as a failure of the stage
// that raised it.
func (r *revealer) run(ctx context.Context, locate func() (Target, error)) (target Target, resource models.Resource, err error) {
	stage := models.StageLocatingTarget
	defer func() {
		if p := recover(); p != nil {
			resource = models.Resource{}
			err = fail(stage, fmt.Errorf("%w: %v", ErrRevealPanicked, p))
		}
	}()

	r.trace(stage)
	target, err = locate()
	if err != nil {
		return nil, models.Resource{}, fail(models.StageLocatingTarget, fmt.Errorf("%w: %w", app.ErrConfiguration, err))
	}

	stage = models.StageUnveilingKey
	r.trace(stage)
	key, err := r.unveiler.Unveil()
	if err != nil {
		return target, models.Resource{}, fail(models.StageUnveilingKey, err)
	}

	stage = models.StageFetchingPayload
	r.trace(stage)
	payload, err := r.fetcher.Fetch(ctx, r.opts.AssetURL)
	if err != nil {
		return target, models.Resource{}, fail(models.StageFetchingPayload, err)
	}

	stage = models.StageDecrypting
	r.trace(stage)
	asset, err := r.decryptor.Decrypt(key, payload)
	if err != nil {
		return target, models.Resource{}, fail(models.StageDecrypting, err)
	}

	stage = models.StageBindingResource
	r.trace(stage)
	resource, err = r.bind(target, asset)
	if err != nil {
		return target, models.Resource{}, fail(models.StageBindingResource, err)
	}

	return target, resource, nil
}

// bind creates the resource, points target at it and releases whatever the
// pipeline bound to target before. The first bind of a target registers a
// teardown hook that releases the bound resource.
func (r *revealer) bind(target Target, asset models.PlaintextAsset) (models.Resource, error) {
	if len(asset.Data) == 0 {
		return models.Resource{}, fmt.Errorf("%w: %w", app.ErrFormat, ErrEmptyPlaintext)
	}

	resource, err := r.resources.Create(asset.Data, asset.MIME)
	if err != nil {
		return models.Resource{}, fmt.Errorf("%w: %w", app.ErrConfiguration, err)
	}

	if err := setSource(target, resource.Locator); err != nil {
		r.resources.Release(resource.Locator)
		return models.Resource{}, err
	}

	r.mu.Lock()
	previous, rebound := r.bound[target]
	r.bound[target] = resource.Locator
	r.mu.Unlock()

	if rebound {
		r.resources.Release(previous)
	} else {
		target.OnTeardown(func() { r.Release(target) })
	}

	target.NotifyLoad(resource.Locator)
	return resource, nil
}

// setSource points target at locator. A target that panics on write is
// reported as a failure so the caller can release the fresh resource.
func setSource(target Target, locator string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %w: %v", app.ErrConfiguration, ErrRevealPanicked, p)
		}
	}()
	target.SetSource(locator)
	return nil
}

func (r *revealer) logFailure(stageErr *StageError, result models.RevealResult) {
	event := r.logger.WithStage(string(stageErr.Stage)).Error().
		Err(stageErr.Err).
		Str("kind", result.Kind).
		Str("asset_url", r.opts.AssetURL).
		Dur("duration", result.Duration)

	var formatErr *adapter.FormatError
	if errors.As(stageErr.Err, &formatErr) {
		event = event.
			Str("sample", formatErr.Sample).
			Int("body_size", formatErr.BodySize)
	}

	event.Msg("asset reveal failed")
}

func (r *revealer) trace(stage models.RevealStage) {
	r.logger.WithStage(string(stage)).Debug().Msg("entering stage")
}

func (r *revealer) setLast(result models.RevealResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = &result
}

// usable rejects nil targets, including typed nils wrapped in the interface.
func usable(target Target) (Target, error) {
	if target == nil || !target.Valid() {
		return nil, ErrTargetNotFound
	}
	return target, nil
}

func fail(stage models.RevealStage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
