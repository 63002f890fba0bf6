// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"fmt"
	"strings"
	"sync"
)

// ReadyState mirrors the document loading lifecycle.
type ReadyState int

const (
	Loading ReadyState = iota
	Interactive
	Complete
)

func (s ReadyState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Interactive:
		return "interactive"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("ReadyState(%d)", int(s))
	}
}

// Document is a registry of elements plus the document ready state.
type Document struct {
	mu        sync.Mutex
	state     ReadyState
	elements  []*Element
	byID      map[string]*Element
	listeners []func()
}

// NewDocument returns an empty document in the [Loading] state.
func NewDocument() *Document {
	return &Document{byID: make(map[string]*Element)}
}

// Add registers el. Element IDs must be unique; an empty ID is allowed for
// elements only reachable by class.
func (d *Document) Add(el *Element) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el.ID != "" {
		if _, ok := d.byID[el.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, el.ID)
		}
		d.byID[el.ID] = el
	}
	d.elements = append(d.elements, el)
	return nil
}

// ElementByID returns the element registered under id.
func (d *Document) ElementByID(id string) (*Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.byID[id]
	return el, ok
}

// QuerySelector returns the first element matching "#id" or ".class", in
// registration order.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	selector = strings.TrimSpace(selector)
	if len(selector) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
	}

	name := selector[1:]
	switch selector[0] {
	case '#':
		if el, ok := d.ElementByID(name); ok {
			return el, nil
		}
	case '.':
		d.mu.Lock()
		defer d.mu.Unlock()
		for _, el := range d.elements {
			if el.HasClass(name) {
				return el, nil
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelector, selector)
	}

	return nil, fmt.Errorf("%w: %s", ErrElementNotFound, selector)
}

// ReadyState returns the current ready state.
func (d *Document) ReadyState() ReadyState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// SetReadyState advances the ready state. Moving backwards is ignored.
// Leaving [Loading] fires every pending readiness listener exactly once.
func (d *Document) SetReadyState(state ReadyState) {
	d.mu.Lock()
	if state <= d.state {
		d.mu.Unlock()
		return
	}

	wasLoading := d.state == Loading
	d.state = state

	var fire []func()
	if wasLoading {
		fire, d.listeners = d.listeners, nil
	}
	d.mu.Unlock()

	for _, fn := range fire {
		fn()
	}
}

// OnReady runs fn once the document is past [Loading]. If it already is, fn
// runs immediately and no listener is registered; otherwise fn is kept as a
// one-shot listener. The return value reports whether a listener was
// registered.
func (d *Document) OnReady(fn func()) bool {
	d.mu.Lock()
	if d.state != Loading {
		d.mu.Unlock()
		fn()
		return false
	}
	d.listeners = append(d.listeners, fn)
	d.mu.Unlock()
	return true
}

// PendingListeners returns the number of registered readiness listeners.
func (d *Document) PendingListeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
