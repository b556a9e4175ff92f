package handler

import (
	"net/http"

	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	svc service.MenuService
}

func NewMenuHandler(svc service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.POST("/categories", h.CreateCategory)
	g.PUT("/categories/:cid", h.UpdateCategory)
	g.DELETE("/categories/:cid", h.DeleteCategory)

	subs := g.Group("/categories/:cid/subcategories")
	subs.GET("", h.ListSubcategories)
	subs.POST("", h.CreateSubcategory)
	subs.PUT("/:sid", h.UpdateSubcategory)
	subs.DELETE("/:sid", h.DeleteSubcategory)
	subs.POST("/:sid/items", h.CreateItem)
	subs.PUT("/:sid/items/:iid", h.UpdateItem)
	subs.DELETE("/:sid/items/:iid", h.DeleteItem)
}

func (h *MenuHandler) ListCategories(c echo.Context) error {
	cats, err := h.svc.ListCategories(c.Request().Context(), middleware.SessionFrom(c), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(cats))
}

func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cats, err := h.svc.CreateCategory(c.Request().Context(), middleware.SessionFrom(c), models.MenuCategory{Category: req.Category, Image: req.Image})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Category created", cats))
}

func (h *MenuHandler) UpdateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cats, err := h.svc.UpdateCategory(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), models.MenuCategory{Category: req.Category, Image: req.Image})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Category updated", cats))
}

func (h *MenuHandler) DeleteCategory(c echo.Context) error {
	cats, err := h.svc.DeleteCategory(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Category deleted", cats))
}

func (h *MenuHandler) ListSubcategories(c echo.Context) error {
	subs, err := h.svc.ListSubcategories(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(subs))
}

func (h *MenuHandler) CreateSubcategory(c echo.Context) error {
	var req dto.SubcategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	subs, err := h.svc.CreateSubcategory(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Subcategory created", subs))
}

func (h *MenuHandler) UpdateSubcategory(c echo.Context) error {
	var req dto.SubcategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	subs, err := h.svc.UpdateSubcategory(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), c.Param("sid"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Subcategory updated", subs))
}

func (h *MenuHandler) DeleteSubcategory(c echo.Context) error {
	subs, err := h.svc.DeleteSubcategory(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), c.Param("sid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Subcategory deleted", subs))
}

func toMenuItem(req dto.ItemRequest) models.MenuItem {
	return models.MenuItem{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Type:        models.ItemType(req.Type),
		Price: models.Price{
			Standard:          req.Price.Standard,
			HappyHour:         req.Price.HappyHour,
			IsHappyHourActive: req.Price.IsHappyHourActive,
		},
	}
}

func (h *MenuHandler) CreateItem(c echo.Context) error {
	var req dto.ItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	subs, err := h.svc.CreateItem(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), c.Param("sid"), toMenuItem(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Item created", subs))
}

func (h *MenuHandler) UpdateItem(c echo.Context) error {
	var req dto.ItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	subs, err := h.svc.UpdateItem(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), c.Param("sid"), c.Param("iid"), toMenuItem(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Item updated", subs))
}

func (h *MenuHandler) DeleteItem(c echo.Context) error {
	subs, err := h.svc.DeleteItem(c.Request().Context(), middleware.SessionFrom(c), c.Param("cid"), c.Param("sid"), c.Param("iid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Item deleted", subs))
}
