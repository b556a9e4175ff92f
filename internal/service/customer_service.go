package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, s session.Session, q listing.Query) ([]models.Customer, error)
	GetCustomer(ctx context.Context, s session.Session, id string) (models.CustomerDetail, error)
	UpdateCustomer(ctx context.Context, s session.Session, id string, in backend.CustomerInput) (models.CustomerDetail, error)
	DeleteCustomer(ctx context.Context, s session.Session, id string) error
	// RegisterCustomer signs a customer up for an event and returns the customer id.
	RegisterCustomer(ctx context.Context, s session.Session, eventID string, in backend.CustomerInput) (string, error)
}

type customerService struct {
	api backend.CustomerAPI
	rec recorder
}

func NewCustomerService(api backend.CustomerAPI, pub ActivityPublisher, now Clock) CustomerService {
	return &customerService{api: api, rec: recorder{pub: pub, now: orNow(now)}}
}

func trimCustomer(in backend.CustomerInput) backend.CustomerInput {
	return backend.CustomerInput{
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
	}
}

func (s *customerService) ListCustomers(ctx context.Context, sess session.Session, q listing.Query) ([]models.Customer, error) {
	customers, err := s.api.ListCustomers(ctx, sess).Unpack()
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return listing.Apply(customers, q, listing.Customers), nil
}

func (s *customerService) GetCustomer(ctx context.Context, sess session.Session, id string) (models.CustomerDetail, error) {
	detail, err := s.api.GetCustomer(ctx, sess, id).Unpack()
	if err != nil {
		return models.CustomerDetail{}, fmt.Errorf("get customer %s: %w", id, err)
	}
	return detail, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, sess session.Session, id string, in backend.CustomerInput) (models.CustomerDetail, error) {
	if err := s.api.UpdateCustomer(ctx, sess, id, trimCustomer(in)).Err(); err != nil {
		return models.CustomerDetail{}, fmt.Errorf("update customer %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceCustomer, models.ActionUpdated, id)
	return s.GetCustomer(ctx, sess, id)
}

func (s *customerService) DeleteCustomer(ctx context.Context, sess session.Session, id string) error {
	if err := s.api.DeleteCustomer(ctx, sess, id).Err(); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceCustomer, models.ActionDeleted, id)
	return nil
}

func (s *customerService) RegisterCustomer(ctx context.Context, sess session.Session, eventID string, in backend.CustomerInput) (string, error) {
	id, err := s.api.RegisterCustomer(ctx, sess, eventID, trimCustomer(in)).Unpack()
	if err != nil {
		return "", fmt.Errorf("register customer for event %s: %w", eventID, err)
	}
	s.rec.record(sess, models.ResourceCustomer, models.ActionCreated, id)
	return id, nil
}
