// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RevealStage is a state of the reveal pipeline.
type RevealStage string

const (
	StageIdle            RevealStage = "idle"
	StageLocatingTarget  RevealStage = "locating_target"
	StageUnveilingKey    RevealStage = "unveiling_key"
	StageFetchingPayload RevealStage = "fetching_payload"
	StageDecrypting      RevealStage = "decrypting"
	StageBindingResource RevealStage = "binding_resource"
	StageDone            RevealStage = "done"
	StageFailed          RevealStage = "failed"
)

// Terminal reports whether no further transition can happen from s.
func (s RevealStage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

// RevealResult describes the outcome of a single pipeline run.
type RevealResult struct {
	// Stage is the terminal stage, either StageDone or StageFailed.
	Stage RevealStage `json:"stage"`
	// FailedAt is the stage that was running when the pipeline failed.
	FailedAt RevealStage `json:"failed_at,omitempty"`
	// Kind is the error class name for failed runs (configuration,
	// transport, format, integrity).
	Kind string `json:"kind,omitempty"`
	// Error is the error message for failed runs.
	Error string `json:"error,omitempty"`

	Locator  string        `json:"locator,omitempty"`
	MIME     string        `json:"mime,omitempty"`
	Size     int           `json:"size,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Succeeded reports whether the run reached StageDone.
func (r RevealResult) Succeeded() bool {
	return r.Stage == StageDone
}
