// Package service provides the catalog query service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/imagecatalog/internal/adapters/repository"
	"github.com/okian/imagecatalog/internal/domain/apperr"
	"github.com/okian/imagecatalog/internal/domain/model"
	"github.com/okian/imagecatalog/pkg/logger"
	"github.com/okian/imagecatalog/pkg/metrics"
)

const greeting = "Hello World!"

// Service answers catalog queries. It holds no mutable state, so a single
// instance serves concurrent requests.
type Service struct {
	store  repository.Store
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the catalog store backing the service.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without WithStore it serves an empty catalog.
func New(opts ...Option) *Service {
	s := &Service{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		// An empty record set always validates.
		empty, _ := repository.NewMemStore(context.Background(), nil)
		s.store = empty
	}
	return s
}

// Hello returns the API greeting.
func (s *Service) Hello(_ context.Context) string {
	return greeting
}

// ListImages returns the whole catalog in stored order. It never fails.
func (s *Service) ListImages(ctx context.Context) []model.Image {
	return s.store.List(ctx)
}

// GetImage returns the image with the given id, or an apperr.ErrNotFound
// error when the catalog has no such record.
func (s *Service) GetImage(ctx context.Context, id int) (model.Image, error) {
	const op = "service.get_image"
	img, err := s.store.Get(ctx, id)
	if err == nil {
		metrics.RecordCatalogLookup(metrics.LookupHit)
		return img, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		metrics.RecordCatalogLookup(metrics.LookupMiss)
		s.logger.Debug(ctx, "image not found", logger.Int("id", id))
		return model.Image{}, apperr.Wrap(op, apperr.ErrNotFound, fmt.Sprintf("Image with id %d not found", id), err)
	}
	return model.Image{}, apperr.Wrap(op, apperr.ErrInternal, "", err)
}

// Count returns the catalog size.
func (s *Service) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}
