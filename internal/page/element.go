// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"slices"
	"sync"
)

// Element is a visual element with an overwritable source locator.
type Element struct {
	ID      string
	classes []string

	mu       sync.RWMutex
	src      string
	onLoad   func(locator string)
	onError  func(err error)
	teardown []func()
}

// NewElement returns an element with the given id and classes.
func NewElement(id string, classes ...string) *Element {
	return &Element{ID: id, classes: slices.Clone(classes)}
}

// Valid reports whether e can be dereferenced. It is safe on a nil receiver.
func (e *Element) Valid() bool {
	return e != nil
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// Source returns the current source locator.
func (e *Element) Source() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.src
}

// SetSource overwrites the source locator.
func (e *Element) SetSource(locator string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.src = locator
}

// SetOnLoad installs the completion callback slot.
func (e *Element) SetOnLoad(fn func(locator string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onLoad = fn
}

// SetOnError installs the failure callback slot.
func (e *Element) SetOnError(fn func(err error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onError = fn
}

// NotifyLoad invokes the completion callback, if any.
func (e *Element) NotifyLoad(locator string) {
	e.mu.RLock()
	fn := e.onLoad
	e.mu.RUnlock()

	if fn != nil {
		fn(locator)
	}
}

// NotifyError invokes the failure callback, if any.
func (e *Element) NotifyError(err error) {
	e.mu.RLock()
	fn := e.onError
	e.mu.RUnlock()

	if fn != nil {
		fn(err)
	}
}

// OnTeardown registers fn to run when the element is torn down.
func (e *Element) OnTeardown(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.teardown = append(e.teardown, fn)
}

// Teardown runs the registered hooks in reverse registration order and
// forgets them, so a second call is a no-op.
func (e *Element) Teardown() {
	e.mu.Lock()
	hooks := e.teardown
	e.teardown = nil
	e.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}
}
