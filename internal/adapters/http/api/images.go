package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/imagecatalog/internal/domain/apperr"
)

// invalidIDMessage is returned when the id path segment is not an integer.
const invalidIDMessage = "Validation failed (numeric string is expected)"

// ImagesDependencies defines the interface for catalog queries.
type ImagesDependencies interface {
	ListImages(ctx context.Context) []Image
	GetImage(ctx context.Context, id int) (Image, error)
}

// ImagesHandler handles catalog requests.
type ImagesHandler struct {
	deps ImagesDependencies
}

// NewImagesHandler creates a new images handler.
func NewImagesHandler(deps ImagesDependencies) *ImagesHandler {
	return &ImagesHandler{deps: deps}
}

// HandleList handles GET /api/images requests.
func (h *ImagesHandler) HandleList(r *http.Request) (any, error) {
	images := h.deps.ListImages(r.Context())
	if images == nil {
		images = []Image{}
	}
	return images, nil
}

// HandleGet handles GET /api/images/{id} requests.
func (h *ImagesHandler) HandleGet(r *http.Request) (any, error) {
	const op = "api.get_image"
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		return nil, apperr.Wrap(op, apperr.ErrBadRequest, invalidIDMessage, err)
	}
	img, err := h.deps.GetImage(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return img, nil
}

var errSignedID = errors.New("explicit plus sign")

// parseID accepts an optional leading minus followed by decimal digits.
func parseID(raw string) (int, error) {
	if strings.HasPrefix(raw, "+") {
		return 0, errSignedID
	}
	return strconv.Atoi(raw)
}
