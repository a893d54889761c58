package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/okian/imagecatalog/internal/domain/model"
)

// defaultCatalog is the catalog bundled with the binary.
//
//go:embed catalog.json
var defaultCatalog []byte

// catalogFile is the on-disk shape of a catalog document.
type catalogFile struct {
	Images []model.Image `json:"images"`
}

// Decode reads a catalog document from r. Unknown fields are rejected so a
// typo in a record key fails loudly instead of producing an empty value.
func Decode(r io.Reader) ([]model.Image, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeCatalog, err)
	}
	if doc.Images == nil {
		return nil, fmt.Errorf("%w: missing \"images\" array", ErrDecodeCatalog)
	}
	return doc.Images, nil
}

// Load decodes a catalog document from r and builds a MemStore from it.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*MemStore, error) {
	records, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return NewMemStore(ctx, records, opts...)
}

// LoadFile loads the catalog at path. An empty path loads the bundled
// catalog. The second return value is the load duration.
func LoadFile(ctx context.Context, path string, opts ...Option) (*MemStore, time.Duration, error) {
	start := time.Now()
	if path == "" {
		s, err := Load(ctx, bytes.NewReader(defaultCatalog), opts...)
		return s, time.Since(start), err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrOpenCatalog, err)
	}
	defer func() { _ = f.Close() }()

	s, err := Load(ctx, f, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog %s: %w", path, err)
	}
	return s, time.Since(start), nil
}
