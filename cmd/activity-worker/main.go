package main

import (
	"log"
	"net/http"

	"github.com/Eursukkul/club-admin/config"
	"github.com/Eursukkul/club-admin/internal/consumer"
	"github.com/Eursukkul/club-admin/internal/handler"
	"github.com/Eursukkul/club-admin/internal/middleware"
	"github.com/Eursukkul/club-admin/internal/repository"
	"github.com/Eursukkul/club-admin/pkg/database"
	"github.com/Eursukkul/club-admin/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if cfg.RabbitURL == "" {
		log.Fatal("RABBITMQ_URL is required for the activity worker")
	}
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	repo := repository.NewActivityRepository(db)
	done := consumer.NewActivityConsumer(repo).Start(msgs)

	e := newServer(repo, done)

	log.Printf("Activity worker starting on :%s", cfg.WorkerPort)
	e.Logger.Fatal(e.Start(":" + cfg.WorkerPort))
}

// newServer serves the activity feed. /health turns 503 once consumerDone is
// closed, i.e. the broker channel went away and nothing new is being stored.
func newServer(repo repository.ActivityRepository, consumerDone <-chan struct{}) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.RequestLogger())
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		select {
		case <-consumerDone:
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded", "service": "activity-worker", "consumer": "stopped",
			})
		default:
			return c.JSON(http.StatusOK, map[string]string{
				"status": "ok", "service": "activity-worker", "consumer": "running",
			})
		}
	})
	handler.NewActivityHandler(repo).RegisterRoutes(e.Group("/api/v1/activity"))

	return e
}
