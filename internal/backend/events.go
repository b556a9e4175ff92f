package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type EventAPI interface {
	ListEvents(ctx context.Context, s session.Session) Result[[]models.Event]
	GetEvent(ctx context.Context, s session.Session, id string) Result[models.Event]
	CreateEvent(ctx context.Context, s session.Session, e models.Event) Result[struct{}]
	UpdateEvent(ctx context.Context, s session.Session, id string, e models.Event) Result[models.Event]
	DeleteEvent(ctx context.Context, s session.Session, id string) Result[struct{}]
}

func (c *Client) ListEvents(ctx context.Context, s session.Session) Result[[]models.Event] {
	return call(ctx, c, &s, http.MethodGet, "/events/events", nil, field[[]models.Event](fromData))
}

// GetEvent reads the detail endpoint, which answers {success, event}.
func (c *Client) GetEvent(ctx context.Context, s session.Session, id string) Result[models.Event] {
	return call(ctx, c, &s, http.MethodGet, "/events/"+url.PathEscape(id), nil, field[models.Event](fromEvent))
}

func (c *Client) CreateEvent(ctx context.Context, s session.Session, e models.Event) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPost, "/events/create", e, discard)
}

// UpdateEvent replaces the whole record; the backend answers {success, updatedEvent}.
func (c *Client) UpdateEvent(ctx context.Context, s session.Session, id string, e models.Event) Result[models.Event] {
	return call(ctx, c, &s, http.MethodPut, "/events/"+url.PathEscape(id), e, field[models.Event](fromUpdatedEvent))
}

func (c *Client) DeleteEvent(ctx context.Context, s session.Session, id string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/events/events/"+url.PathEscape(id), nil, discard)
}
