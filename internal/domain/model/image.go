// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validation errors returned by Image.Validate.
var (
	ErrEmptyName  = errors.New("image name must not be empty")
	ErrInvalidURL = errors.New("image url must be an absolute URI")
)

// Image is a single catalog record. Records are immutable once loaded.
type Image struct {
	ID   int    `json:"id"`   // externally assigned, unique within a catalog
	Name string `json:"name"` // file name, e.g. "sample1.jpg"
	URL  string `json:"url"`  // absolute URI of the image
}

// Validate checks the record's field invariants. Id uniqueness is a
// collection property and is enforced by the store.
func (i Image) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("image %d: %w", i.ID, ErrEmptyName)
	}
	u, err := url.Parse(i.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("image %d: %w: %q", i.ID, ErrInvalidURL, i.URL)
	}
	return nil
}
