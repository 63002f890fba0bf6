// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-asset-reveal/internal/page"
)

// NewPage returns a loading document containing a single element that
// selector matches.
func NewPage(selector string) (*page.Document, *page.Element, error) {
	selector = strings.TrimSpace(selector)
	if len(selector) < 2 {
		return nil, nil, fmt.Errorf("%w: %q", page.ErrInvalidSelector, selector)
	}

	var el *page.Element
	switch selector[0] {
	case '#':
		el = page.NewElement(selector[1:])
	case '.':
		el = page.NewElement("", selector[1:])
	default:
		return nil, nil, fmt.Errorf("%w: %q", page.ErrInvalidSelector, selector)
	}

	doc := page.NewDocument()
	if err := doc.Add(el); err != nil {
		return nil, nil, err
	}
	return doc, el, nil
}
