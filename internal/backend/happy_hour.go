package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type HappyHourAPI interface {
	GetHappyHour(ctx context.Context, s session.Session) Result[*models.HappyHour]
	CreateHappyHour(ctx context.Context, s session.Session, h models.HappyHour) Result[*models.HappyHour]
	ReplaceHappyHour(ctx context.Context, s session.Session, id string, h models.HappyHour) Result[*models.HappyHour]
}

// GetHappyHour yields a nil record when none exists.
func (c *Client) GetHappyHour(ctx context.Context, s session.Session) Result[*models.HappyHour] {
	return call(ctx, c, &s, http.MethodGet, "/hpyhrs", nil, field[*models.HappyHour](fromData))
}

func (c *Client) CreateHappyHour(ctx context.Context, s session.Session, h models.HappyHour) Result[*models.HappyHour] {
	return call(ctx, c, &s, http.MethodPost, "/hpyhrs", h, field[*models.HappyHour](fromData))
}

func (c *Client) ReplaceHappyHour(ctx context.Context, s session.Session, id string, h models.HappyHour) Result[*models.HappyHour] {
	return call(ctx, c, &s, http.MethodPut, "/hpyhrs/"+url.PathEscape(id), h, field[*models.HappyHour](fromData))
}
