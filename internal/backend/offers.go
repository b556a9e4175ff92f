package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

// OfferInput is the writable part of an offer.
type OfferInput struct {
	Offer       string `json:"offer"`
	Description string `json:"description"`
	IsLive      bool   `json:"isLive"`
}

type OfferAPI interface {
	ListOffers(ctx context.Context, s session.Session) Result[[]models.Offer]
	CreateOffer(ctx context.Context, s session.Session, in OfferInput) Result[struct{}]
	UpdateOffer(ctx context.Context, s session.Session, id string, in OfferInput) Result[struct{}]
	DeleteOffer(ctx context.Context, s session.Session, id string) Result[struct{}]
}

func (c *Client) ListOffers(ctx context.Context, s session.Session) Result[[]models.Offer] {
	return call(ctx, c, &s, http.MethodGet, "/offfer/all", nil, field[[]models.Offer](fromData))
}

func (c *Client) CreateOffer(ctx context.Context, s session.Session, in OfferInput) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPost, "/offfer/create", in, discard)
}

func (c *Client) UpdateOffer(ctx context.Context, s session.Session, id string, in OfferInput) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPut, "/offfer/updateoffer/"+url.PathEscape(id), in, discard)
}

func (c *Client) DeleteOffer(ctx context.Context, s session.Session, id string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/offfer/deletoffer/"+url.PathEscape(id), nil, discard)
}
