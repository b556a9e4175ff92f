package consumer

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
)

const storeTimeout = 5 * time.Second

type ActivityConsumer struct {
	repo repository.ActivityRepository
}

func NewActivityConsumer(repo repository.ActivityRepository) *ActivityConsumer {
	return &ActivityConsumer{repo: repo}
}

// Start stores every delivered activity until msgs is closed. done is closed
// once the last message has been handled.
func (ac *ActivityConsumer) Start(msgs <-chan amqp.Delivery) (done <-chan struct{}) {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		for msg := range msgs {
			ac.handleMessage(msg)
		}
		log.Println("[ActivityConsumer] channel closed, stopping consumer")
	}()
	return ch
}

func (ac *ActivityConsumer) handleMessage(msg amqp.Delivery) {
	var a models.Activity
	if err := json.Unmarshal(msg.Body, &a); err != nil {
		log.Printf("[ActivityConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}
	if a.ID == "" || a.Resource == "" || a.Action == "" {
		log.Printf("[ActivityConsumer] dropping incomplete activity from %s", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = msg.Timestamp
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := ac.repo.Create(ctx, &a); err != nil {
		log.Printf("[ActivityConsumer] failed to store activity %s: %v", a.ID, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[ActivityConsumer] stored %s by %s", a.RoutingKey(), a.Actor)
	msg.Ack(false)
}
