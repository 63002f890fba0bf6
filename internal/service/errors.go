// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-asset-reveal/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTargetNotFound      = errors.New("reveal target not found")
	ErrEmptyPlaintext      = errors.New("decrypted asset is empty")
	ErrAssetURLIsNotSet    = errors.New("asset url is not set")
	ErrRevealPanicked      = errors.New("reveal panicked")
	ErrResourceUnavailable = errors.New("resource unavailable")
)

// StageError records the pipeline stage that was running when Err occurred.
type StageError struct {
	Stage models.RevealStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
