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

// MenuService mutations return the refetched collection the mutation touched.
type MenuService interface {
	ListCategories(ctx context.Context, s session.Session, search string) ([]models.MenuCategory, error)
	CreateCategory(ctx context.Context, s session.Session, cat models.MenuCategory) ([]models.MenuCategory, error)
	UpdateCategory(ctx context.Context, s session.Session, id string, cat models.MenuCategory) ([]models.MenuCategory, error)
	DeleteCategory(ctx context.Context, s session.Session, id string) ([]models.MenuCategory, error)

	ListSubcategories(ctx context.Context, s session.Session, categoryID, search string) ([]models.MenuSubcategory, error)
	CreateSubcategory(ctx context.Context, s session.Session, categoryID, name string) ([]models.MenuSubcategory, error)
	UpdateSubcategory(ctx context.Context, s session.Session, categoryID, subID, name string) ([]models.MenuSubcategory, error)
	DeleteSubcategory(ctx context.Context, s session.Session, categoryID, subID string) ([]models.MenuSubcategory, error)

	CreateItem(ctx context.Context, s session.Session, categoryID, subID string, item models.MenuItem) ([]models.MenuSubcategory, error)
	UpdateItem(ctx context.Context, s session.Session, categoryID, subID, itemID string, item models.MenuItem) ([]models.MenuSubcategory, error)
	DeleteItem(ctx context.Context, s session.Session, categoryID, subID, itemID string) ([]models.MenuSubcategory, error)
}

type menuService struct {
	api backend.MenuAPI
	rec recorder
}

func NewMenuService(api backend.MenuAPI, pub ActivityPublisher, now Clock) MenuService {
	return &menuService{api: api, rec: recorder{pub: pub, now: orNow(now)}}
}

func (s *menuService) ListCategories(ctx context.Context, sess session.Session, search string) ([]models.MenuCategory, error) {
	cats, err := s.api.ListCategories(ctx, sess).Unpack()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return listing.Apply(cats, listing.Query{Search: search}, listing.Categories), nil
}

func (s *menuService) CreateCategory(ctx context.Context, sess session.Session, cat models.MenuCategory) ([]models.MenuCategory, error) {
	cat.Category = strings.TrimSpace(cat.Category)
	if err := s.api.CreateCategory(ctx, sess, cat).Err(); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.rec.record(sess, models.ResourceMenuCategory, models.ActionCreated, "")
	return s.ListCategories(ctx, sess, "")
}

func (s *menuService) UpdateCategory(ctx context.Context, sess session.Session, id string, cat models.MenuCategory) ([]models.MenuCategory, error) {
	cat.ID = ""
	cat.Category = strings.TrimSpace(cat.Category)
	if err := s.api.UpdateCategory(ctx, sess, id, cat).Err(); err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceMenuCategory, models.ActionUpdated, id)
	return s.ListCategories(ctx, sess, "")
}

func (s *menuService) DeleteCategory(ctx context.Context, sess session.Session, id string) ([]models.MenuCategory, error) {
	if err := s.api.DeleteCategory(ctx, sess, id).Err(); err != nil {
		return nil, fmt.Errorf("delete category %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceMenuCategory, models.ActionDeleted, id)
	return s.ListCategories(ctx, sess, "")
}

func (s *menuService) ListSubcategories(ctx context.Context, sess session.Session, categoryID, search string) ([]models.MenuSubcategory, error) {
	subs, err := s.api.ListSubcategories(ctx, sess, categoryID).Unpack()
	if err != nil {
		return nil, fmt.Errorf("list subcategories of %s: %w", categoryID, err)
	}
	return listing.Subcategories(subs, search), nil
}

func (s *menuService) CreateSubcategory(ctx context.Context, sess session.Session, categoryID, name string) ([]models.MenuSubcategory, error) {
	if err := s.api.CreateSubcategory(ctx, sess, categoryID, strings.TrimSpace(name)).Err(); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	s.rec.record(sess, models.ResourceMenuSubcategory, models.ActionCreated, categoryID)
	return s.ListSubcategories(ctx, sess, categoryID, "")
}

func (s *menuService) UpdateSubcategory(ctx context.Context, sess session.Session, categoryID, subID, name string) ([]models.MenuSubcategory, error) {
	if err := s.api.UpdateSubcategory(ctx, sess, categoryID, subID, strings.TrimSpace(name)).Err(); err != nil {
		return nil, fmt.Errorf("update subcategory %s: %w", subID, err)
	}
	s.rec.record(sess, models.ResourceMenuSubcategory, models.ActionUpdated, subID)
	return s.ListSubcategories(ctx, sess, categoryID, "")
}

func (s *menuService) DeleteSubcategory(ctx context.Context, sess session.Session, categoryID, subID string) ([]models.MenuSubcategory, error) {
	if err := s.api.DeleteSubcategory(ctx, sess, categoryID, subID).Err(); err != nil {
		return nil, fmt.Errorf("delete subcategory %s: %w", subID, err)
	}
	s.rec.record(sess, models.ResourceMenuSubcategory, models.ActionDeleted, subID)
	return s.ListSubcategories(ctx, sess, categoryID, "")
}

func normalizeItem(item models.MenuItem) models.MenuItem {
	item.ID = ""
	item.Name = strings.TrimSpace(item.Name)
	if item.Type == "" {
		item.Type = models.ItemVeg
	}
	item.Price = item.Price.Normalize()
	return item
}

func (s *menuService) CreateItem(ctx context.Context, sess session.Session, categoryID, subID string, item models.MenuItem) ([]models.MenuSubcategory, error) {
	if err := s.api.CreateItem(ctx, sess, categoryID, subID, normalizeItem(item)).Err(); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.rec.record(sess, models.ResourceMenuItem, models.ActionCreated, subID)
	return s.ListSubcategories(ctx, sess, categoryID, "")
}

func (s *menuService) UpdateItem(ctx context.Context, sess session.Session, categoryID, subID, itemID string, item models.MenuItem) ([]models.MenuSubcategory, error) {
	if err := s.api.UpdateItem(ctx, sess, categoryID, subID, itemID, normalizeItem(item)).Err(); err != nil {
		return nil, fmt.Errorf("update item %s: %w", itemID, err)
	}
	s.rec.record(sess, models.ResourceMenuItem, models.ActionUpdated, itemID)
	return s.ListSubcategories(ctx, sess, categoryID, "")
}

func (s *menuService) DeleteItem(ctx context.Context, sess session.Session, categoryID, subID, itemID string) ([]models.MenuSubcategory, error) {
	if err := s.api.DeleteItem(ctx, sess, categoryID, subID, itemID).Err(); err != nil {
		return nil, fmt.Errorf("delete item %s: %w", itemID, err)
	}
	s.rec.record(sess, models.ResourceMenuItem, models.ActionDeleted, itemID)
	return s.ListSubcategories(ctx, sess, categoryID, "")
}
