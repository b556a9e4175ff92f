package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type OfferService interface {
	ListOffers(ctx context.Context, s session.Session, q listing.Query) ([]models.Offer, error)
	CreateOffer(ctx context.Context, s session.Session, in backend.OfferInput) ([]models.Offer, error)
	UpdateOffer(ctx context.Context, s session.Session, id string, in backend.OfferInput) ([]models.Offer, error)
	// ToggleOffer flips isLive and returns the offer as refetched.
	ToggleOffer(ctx context.Context, s session.Session, id string) (models.Offer, error)
	DeleteOffer(ctx context.Context, s session.Session, id string) ([]models.Offer, error)
}

type offerService struct {
	api backend.OfferAPI
	rec recorder
}

func NewOfferService(api backend.OfferAPI, pub ActivityPublisher, now Clock) OfferService {
	return &offerService{api: api, rec: recorder{pub: pub, now: orNow(now)}}
}

func (s *offerService) ListOffers(ctx context.Context, sess session.Session, q listing.Query) ([]models.Offer, error) {
	offers, err := s.api.ListOffers(ctx, sess).Unpack()
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return listing.Apply(offers, q, listing.Offers), nil
}

func (s *offerService) CreateOffer(ctx context.Context, sess session.Session, in backend.OfferInput) ([]models.Offer, error) {
	if err := s.api.CreateOffer(ctx, sess, in).Err(); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}
	s.rec.record(sess, models.ResourceOffer, models.ActionCreated, "")
	return s.ListOffers(ctx, sess, listing.Query{})
}

func (s *offerService) UpdateOffer(ctx context.Context, sess session.Session, id string, in backend.OfferInput) ([]models.Offer, error) {
	if err := s.api.UpdateOffer(ctx, sess, id, in).Err(); err != nil {
		return nil, fmt.Errorf("update offer %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceOffer, models.ActionUpdated, id)
	return s.ListOffers(ctx, sess, listing.Query{})
}

func findOffer(offers []models.Offer, id string) (models.Offer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return models.Offer{}, false
}

func (s *offerService) ToggleOffer(ctx context.Context, sess session.Session, id string) (models.Offer, error) {
	offers, err := s.ListOffers(ctx, sess, listing.Query{})
	if err != nil {
		return models.Offer{}, err
	}
	o, ok := findOffer(offers, id)
	if !ok {
		return models.Offer{}, fmt.Errorf("offer %s: %w", id, ErrNotFound)
	}

	in := backend.OfferInput{Offer: o.Offer, Description: o.Description, IsLive: !o.IsLive}
	if err := s.api.UpdateOffer(ctx, sess, id, in).Err(); err != nil {
		return models.Offer{}, fmt.Errorf("toggle offer %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceOffer, models.ActionToggled, id)

	offers, err = s.ListOffers(ctx, sess, listing.Query{})
	if err != nil {
		return models.Offer{}, err
	}
	if o, ok = findOffer(offers, id); !ok {
		return models.Offer{}, fmt.Errorf("offer %s: %w", id, ErrNotFound)
	}
	return o, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, sess session.Session, id string) ([]models.Offer, error) {
	if err := s.api.DeleteOffer(ctx, sess, id).Err(); err != nil {
		return nil, fmt.Errorf("delete offer %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceOffer, models.ActionDeleted, id)
	return s.ListOffers(ctx, sess, listing.Query{})
}
