package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

// CustomerInput is the writable part of a customer.
type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CustomerAPI interface {
	ListCustomers(ctx context.Context, s session.Session) Result[[]models.Customer]
	GetCustomer(ctx context.Context, s session.Session, id string) Result[models.CustomerDetail]
	UpdateCustomer(ctx context.Context, s session.Session, id string, in CustomerInput) Result[models.Customer]
	DeleteCustomer(ctx context.Context, s session.Session, id string) Result[struct{}]
	RegisterCustomer(ctx context.Context, s session.Session, eventID string, in CustomerInput) Result[string]
}

func (c *Client) ListCustomers(ctx context.Context, s session.Session) Result[[]models.Customer] {
	return call(ctx, c, &s, http.MethodGet, "/customers/customers", nil, field[[]models.Customer](fromData))
}

func (c *Client) GetCustomer(ctx context.Context, s session.Session, id string) Result[models.CustomerDetail] {
	return call(ctx, c, &s, http.MethodGet, "/customers/customer/"+url.PathEscape(id), nil, field[models.CustomerDetail](fromData))
}

func (c *Client) UpdateCustomer(ctx context.Context, s session.Session, id string, in CustomerInput) Result[models.Customer] {
	return call(ctx, c, &s, http.MethodPut, "/customers/customer/"+url.PathEscape(id), in, field[models.Customer](fromData))
}

func (c *Client) DeleteCustomer(ctx context.Context, s session.Session, id string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/customers/customer/"+url.PathEscape(id), nil, discard)
}

// RegisterCustomer signs a customer up for an event and returns the new customer id.
func (c *Client) RegisterCustomer(ctx context.Context, s session.Session, eventID string, in CustomerInput) Result[string] {
	return call[string](ctx, c, &s, http.MethodPost, "/customers/register/"+url.PathEscape(eventID), in, func(env envelope) (string, error) {
		return env.CustomerID, nil
	})
}
