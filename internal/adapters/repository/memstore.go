package repository

import (
	"context"
	"fmt"

	"github.com/okian/imagecatalog/internal/domain/model"
	"github.com/okian/imagecatalog/pkg/logger"
)

// MemStore is an immutable, in-memory Store. It is safe for concurrent use
// because nothing is written after construction.
type MemStore struct {
	images     []model.Image
	logger     logger.Logger
	reportSize func(int)
}

var _ Store = (*MemStore)(nil)

// NewMemStore validates records and builds a store preserving their order.
// Every record must pass model.Image.Validate and ids must be unique.
func NewMemStore(ctx context.Context, records []model.Image, opts ...Option) (*MemStore, error) {
	s := &MemStore{
		logger:     logger.NewNop(),
		reportSize: func(int) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	seen := make(map[int]int, len(records))
	images := make([]model.Image, 0, len(records))
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
		}
		if prev, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: id %d at records %d and %d", ErrDuplicateID, rec.ID, prev, i)
		}
		seen[rec.ID] = i
		images = append(images, rec)
	}
	s.images = images

	s.reportSize(len(images))
	s.logger.Info(ctx, "catalog store ready", logger.Int("images", len(images)))
	return s, nil
}

// List returns a copy of all records in load order.
func (s *MemStore) List(_ context.Context) []model.Image {
	out := make([]model.Image, len(s.images))
	copy(out, s.images)
	return out
}

// Get performs a linear scan for the first record with the given id.
func (s *MemStore) Get(_ context.Context, id int) (model.Image, error) {
	for _, img := range s.images {
		if img.ID == id {
			return img, nil
		}
	}
	return model.Image{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Count returns the number of records.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.images)
}
