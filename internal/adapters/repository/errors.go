package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound      = errors.New("image not found")
	ErrDuplicateID   = errors.New("duplicate image id")
	ErrInvalidRecord = errors.New("invalid image record")
	ErrDecodeCatalog = errors.New("decode catalog failed")
	ErrOpenCatalog   = errors.New("open catalog failed")
)
