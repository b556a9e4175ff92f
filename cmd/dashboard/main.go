package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Eursukkul/club-admin/config"
	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/handler"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/service"
	"github.com/Eursukkul/club-admin/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

type services struct {
	auth      service.AuthService
	events    service.EventService
	menu      service.MenuService
	happyHour service.HappyHourService
	offers    service.OfferService
	gallery   service.GalleryService
	customers service.CustomerService
}

func main() {
	cfg := config.Load()
	loc := cfg.Location()

	// Activity publishing is optional; without RABBITMQ_URL mutations are not audited.
	var pub service.ActivityPublisher
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("[RabbitMQ] activity publishing disabled: %v", err)
		} else {
			defer publisher.Close()
			pub = publisher
		}
	}

	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	svc := services{
		auth:      service.NewAuthService(client),
		events:    service.NewEventService(client, pub, loc, time.Now),
		menu:      service.NewMenuService(client, pub, time.Now),
		happyHour: service.NewHappyHourService(client, pub, time.Now),
		offers:    service.NewOfferService(client, pub, time.Now),
		gallery:   service.NewGalleryService(client, pub, time.Now),
		customers: service.NewCustomerService(client, pub, time.Now),
	}

	e := newServer(svc, cfg, loc, time.Now)

	log.Printf("Dashboard starting on :%s (backend %s, timezone %s)", cfg.ServerPort, cfg.BackendURL, loc)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

func newServer(svc services, cfg *config.Config, loc *time.Location, now func() time.Time) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator()
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "dashboard"})
	})

	api := e.Group("/api/v1")
	handler.NewAuthHandler(svc.auth, cfg.CookieSecure).RegisterRoutes(api.Group("/auth"))

	auth := middleware.RequireSession(now)
	handler.NewEventHandler(svc.events, svc.customers, loc).RegisterRoutes(api.Group("/events", auth))
	handler.NewMenuHandler(svc.menu).RegisterRoutes(api.Group("/menu", auth))
	handler.NewHappyHourHandler(svc.happyHour).RegisterRoutes(api.Group("/happy-hour", auth))
	handler.NewOfferHandler(svc.offers).RegisterRoutes(api.Group("/offers", auth))
	handler.NewGalleryHandler(svc.gallery).RegisterRoutes(api.Group("/gallery", auth))
	handler.NewCustomerHandler(svc.customers, loc, now).RegisterRoutes(api.Group("/customers", auth))

	return e
}
