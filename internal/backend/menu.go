package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

type MenuAPI interface {
	ListCategories(ctx context.Context, s session.Session) Result[[]models.MenuCategory]
	CreateCategory(ctx context.Context, s session.Session, cat models.MenuCategory) Result[struct{}]
	UpdateCategory(ctx context.Context, s session.Session, id string, cat models.MenuCategory) Result[struct{}]
	DeleteCategory(ctx context.Context, s session.Session, id string) Result[struct{}]

	ListSubcategories(ctx context.Context, s session.Session, categoryID string) Result[[]models.MenuSubcategory]
	CreateSubcategory(ctx context.Context, s session.Session, categoryID, name string) Result[struct{}]
	UpdateSubcategory(ctx context.Context, s session.Session, categoryID, subID, name string) Result[struct{}]
	DeleteSubcategory(ctx context.Context, s session.Session, categoryID, subID string) Result[struct{}]

	CreateItem(ctx context.Context, s session.Session, categoryID, subID string, item models.MenuItem) Result[struct{}]
	UpdateItem(ctx context.Context, s session.Session, categoryID, subID, itemID string, item models.MenuItem) Result[struct{}]
	DeleteItem(ctx context.Context, s session.Session, categoryID, subID, itemID string) Result[struct{}]
}

func segs(parts ...string) string {
	var p string
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func (c *Client) ListCategories(ctx context.Context, s session.Session) Result[[]models.MenuCategory] {
	return call(ctx, c, &s, http.MethodGet, "/menu/categories", nil, field[[]models.MenuCategory](fromData))
}

func (c *Client) CreateCategory(ctx context.Context, s session.Session, cat models.MenuCategory) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPost, "/menu/create", cat, discard)
}

func (c *Client) UpdateCategory(ctx context.Context, s session.Session, id string, cat models.MenuCategory) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPut, "/menu/updatecategory"+segs(id), cat, discard)
}

func (c *Client) DeleteCategory(ctx context.Context, s session.Session, id string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/menu/category"+segs(id), nil, discard)
}

func (c *Client) ListSubcategories(ctx context.Context, s session.Session, categoryID string) Result[[]models.MenuSubcategory] {
	return call(ctx, c, &s, http.MethodGet, "/menu/category"+segs(categoryID)+"/subcategories", nil, field[[]models.MenuSubcategory](fromData))
}

type subcategoryBody struct {
	Name string `json:"name"`
}

func (c *Client) CreateSubcategory(ctx context.Context, s session.Session, categoryID, name string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPost, "/menu/subcategory/create"+segs(categoryID), subcategoryBody{Name: name}, discard)
}

func (c *Client) UpdateSubcategory(ctx context.Context, s session.Session, categoryID, subID, name string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPut, "/menu/updatesubcategory"+segs(categoryID, subID), subcategoryBody{Name: name}, discard)
}

func (c *Client) DeleteSubcategory(ctx context.Context, s session.Session, categoryID, subID string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/menu/subcategory"+segs(categoryID, subID), nil, discard)
}

func (c *Client) CreateItem(ctx context.Context, s session.Session, categoryID, subID string, item models.MenuItem) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPost, "/menu/item/create"+segs(categoryID, subID), item, discard)
}

func (c *Client) UpdateItem(ctx context.Context, s session.Session, categoryID, subID, itemID string, item models.MenuItem) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodPut, "/menu/updateitem"+segs(categoryID, subID, itemID), item, discard)
}

func (c *Client) DeleteItem(ctx context.Context, s session.Session, categoryID, subID, itemID string) Result[struct{}] {
	return call[struct{}](ctx, c, &s, http.MethodDelete, "/menu/item"+segs(categoryID, subID, itemID), nil, discard)
}
