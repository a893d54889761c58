package repository

import "github.com/okian/imagecatalog/pkg/logger"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithLogger sets the logger used while building the store.
func WithLogger(l logger.Logger) Option {
	return func(s *MemStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSizeReporter registers a callback that receives the catalog size once
// the store is built, e.g. to feed a gauge.
func WithSizeReporter(fn func(int)) Option {
	return func(s *MemStore) {
		if fn != nil {
			s.reportSize = fn
		}
	}
}
