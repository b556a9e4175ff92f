package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type GalleryAPI interface {
	ListImages(ctx context.Context, s session.Session) Result[[]models.GalleryImage]
	AddImage(ctx context.Context, s session.Session, img models.GalleryImage) Result[struct{}]
	DeleteImage(ctx context.Context, s session.Session, id string) Result[struct{}]
}

func (c *Client) ListImages(ctx context.Context, s session.Session) Result[[]models.GalleryImage] {
	return call(ctx, c, &s, http.MethodGet, "/gallery", nil, field[[]models.GalleryImage](fromData))
}

func (c *Client) AddImage(ctx context.Context, s session.Session, img models.GalleryImage) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPost, "/gallery", img, discard)
}

func (c *Client) DeleteImage(ctx context.Context, s session.Session, id string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/gallery/"+url.PathEscape(id), nil, discard)
}
