package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/lifecycle"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/Eursukkul/club-admin/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOffers_Handler_DefaultSort(t *testing.T) {
	var got listing.Query
	svc := &mockOfferService{
		listFn: func(ctx context.Context, s session.Session, q listing.Query) ([]models.Offer, error) {
			got = q
			return []models.Offer{}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/v1/offers?search=beer", "")

	err := NewOfferHandler(svc).ListOffers(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, listing.Query{Search: "beer", SortKey: "createdAt", Order: listing.Desc}, got)
}

func TestListOffers_Handler_ExplicitSort(t *testing.T) {
	var got listing.Query
	svc := &mockOfferService{
		listFn: func(ctx context.Context, s session.Session, q listing.Query) ([]models.Offer, error) {
			got = q
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodGet, "/api/v1/offers?sort=offer&order=desc", "")

	require.NoError(t, NewOfferHandler(svc).ListOffers(c))
	assert.Equal(t, "offer", got.SortKey)
	assert.Equal(t, listing.Desc, got.Order)
}

func TestCreateOffer_Handler_Validation(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/v1/offers", `{"offer":"","description":""}`)

	err := NewOfferHandler(&mockOfferService{}).CreateOffer(c)

	fe, ok := lifecycle.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, lifecycle.MsgRequired, fe["offer"])
	assert.Equal(t, lifecycle.MsgRequired, fe["description"])
}

func TestCreateOffer_Handler_Success(t *testing.T) {
	var got backend.OfferInput
	svc := &mockOfferService{
		createFn: func(ctx context.Context, s session.Session, in backend.OfferInput) ([]models.Offer, error) {
			got = in
			return []models.Offer{{ID: "o1", Offer: in.Offer}}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/v1/offers", `{"offer":"2 for 1","description":"Cocktails","isLive":true}`)

	err := NewOfferHandler(svc).CreateOffer(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, got.IsLive)
}

func TestToggleOffer_Handler_NotFound(t *testing.T) {
	svc := &mockOfferService{
		toggleFn: func(ctx context.Context, s session.Session, id string) (models.Offer, error) {
			return models.Offer{}, fmt.Errorf("offer %s: %w", id, service.ErrNotFound)
		},
	}
	c, _ := newContext(http.MethodPost, "/api/v1/offers/x/toggle", "")
	c.SetParamNames("id")
	c.SetParamValues("x")

	err := NewOfferHandler(svc).ToggleOffer(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestToggleOffer_Handler_Live(t *testing.T) {
	svc := &mockOfferService{
		toggleFn: func(ctx context.Context, s session.Session, id string) (models.Offer, error) {
			return models.Offer{ID: id, Offer: "2 for 1", IsLive: true}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/api/v1/offers/o1/toggle", "")
	c.SetParamNames("id")
	c.SetParamValues("o1")

	require.NoError(t, NewOfferHandler(svc).ToggleOffer(c))
	assert.Contains(t, rec.Body.String(), "Offer is now live")
}
