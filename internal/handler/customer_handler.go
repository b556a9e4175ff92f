package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/export"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	svc service.CustomerService
	loc *time.Location
	now func() time.Time
}

func NewCustomerHandler(svc service.CustomerService, loc *time.Location, now func() time.Time) *CustomerHandler {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &CustomerHandler{svc: svc, loc: loc, now: now}
}

func (h *CustomerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListCustomers)
	g.GET("/export.xlsx", h.ExportCustomers)
	g.GET("/:id", h.GetCustomer)
	g.PUT("/:id", h.UpdateCustomer)
	g.DELETE("/:id", h.DeleteCustomer)
}

func (h *CustomerHandler) list(c echo.Context, q listing.Query) ([]dto.CustomerView, error) {
	customers, err := h.svc.ListCustomers(c.Request().Context(), middleware.SessionFrom(c), q)
	if err != nil {
		return nil, err
	}
	now := h.now()
	views := make([]dto.CustomerView, len(customers))
	for i, cu := range customers {
		views[i] = dto.ToCustomerView(cu, now)
	}
	return views, nil
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	views, err := h.list(c, listQuery(c, "name", listing.Asc))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(views))
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	detail, err := h.svc.GetCustomer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(detail))
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req dto.CustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	detail, err := h.svc.UpdateCustomer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"),
		backend.CustomerInput{Name: req.Name, Phone: req.Phone, Email: req.Email})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Customer updated", detail))
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if err := h.svc.DeleteCustomer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		return err
	}
	views, err := h.list(c, listing.Query{SortKey: "createdAt", Order: listing.Desc})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Customer deleted", views))
}

// ExportCustomers honours the same search and sort as the list.
func (h *CustomerHandler) ExportCustomers(c echo.Context) error {
	customers, err := h.svc.ListCustomers(c.Request().Context(), middleware.SessionFrom(c), listQuery(c, "name", listing.Asc))
	if err != nil {
		return err
	}
	data, err := export.CustomersXLSX(customers, h.now(), h.loc)
	if err != nil {
		return fmt.Errorf("customers workbook: %w", err)
	}
	name := "customers-" + h.now().In(h.loc).Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, export.XLSXContentType, data)
}
