// Package repository holds the read-only image catalog and its loaders.
package repository

import (
	"context"

	"github.com/okian/imagecatalog/internal/domain/model"
)

// Store provides read access to the image catalog.
type Store interface {
	// List returns every record in catalog order. The returned slice is a
	// copy; mutating it does not affect the store.
	List(ctx context.Context) []model.Image

	// Get returns the first record with the given id.
	// Returns ErrNotFound if no record matches.
	Get(ctx context.Context, id int) (model.Image, error)

	// Count returns the number of records in the catalog.
	Count(ctx context.Context) int
}
