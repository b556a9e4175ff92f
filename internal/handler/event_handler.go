package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/dto"
	"github.com/Eursukkul/club-admin/internal/export"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	events    service.EventService
	customers service.CustomerService
	loc       *time.Location
}

func NewEventHandler(events service.EventService, customers service.CustomerService, loc *time.Location) *EventHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &EventHandler{events: events, customers: customers, loc: loc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListEvents)
	g.POST("", h.CreateEvent)
	g.GET("/:id", h.GetEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.GET("/:id/attendees", h.Roster)
	g.GET("/:id/attendees.xlsx", h.AttendeesXLSX)
	g.POST("/:id/customers", h.RegisterCustomer)
}

func (h *EventHandler) view(s service.EventSnapshot) dto.EventView {
	return dto.ToEventView(s.Event, s.Status, s.Capacity, h.loc)
}

func (h *EventHandler) list(c echo.Context, f service.EventFilter) ([]dto.EventView, error) {
	snaps, err := h.events.ListEvents(c.Request().Context(), middleware.SessionFrom(c), f)
	if err != nil {
		return nil, err
	}
	views := make([]dto.EventView, len(snaps))
	for i, s := range snaps {
		views[i] = h.view(s)
	}
	return views, nil
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	views, err := h.list(c, service.EventFilter{Search: c.QueryParam("search"), Status: c.QueryParam("status")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(views))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	snap, err := h.events.GetEvent(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OK(h.view(snap)))
}

func toEventInput(req dto.EventRequest) service.EventInput {
	return service.EventInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Password:    req.Password,
		Images:      req.Images,
		Instants:    req.RawInstants(),
	}
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.events.CreateEvent(c.Request().Context(), middleware.SessionFrom(c), toEventInput(req)); err != nil {
		return err
	}

	views, err := h.list(c, service.EventFilter{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Event created", views))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	snap, err := h.events.UpdateEvent(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"), toEventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Event updated", h.view(snap)))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.events.DeleteEvent(c.Request().Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		return err
	}

	views, err := h.list(c, service.EventFilter{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.OKMessage("Event deleted", views))
}

// Roster returns the attendee list as plain text, ready to copy.
func (h *EventHandler) Roster(c echo.Context) error {
	snap, err := h.events.GetEvent(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, export.Roster(snap.Event.Attendees))
}

func (h *EventHandler) AttendeesXLSX(c echo.Context) error {
	snap, err := h.events.GetEvent(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		return err
	}

	data, err := export.AttendeesXLSX(snap.Event)
	if err != nil {
		return fmt.Errorf("attendees workbook: %w", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "attendees-"+c.Param("id")+".xlsx"))
	return c.Blob(http.StatusOK, export.XLSXContentType, data)
}

func (h *EventHandler) RegisterCustomer(c echo.Context) error {
	var req dto.CustomerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	in := backend.CustomerInput{Name: req.Name, Phone: req.Phone, Email: req.Email}
	id, err := h.customers.RegisterCustomer(c.Request().Context(), middleware.SessionFrom(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.OKMessage("Customer registered", map[string]string{"customerId": id}))
}
