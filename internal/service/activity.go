package service

import (
	"errors"
	"log"
	"time"

	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// ActivityPublisher is satisfied by *rabbitmq.Publisher. A nil publisher disables auditing.
type ActivityPublisher interface {
	Publish(routingKey string, payload any) error
}

type Clock func() time.Time

func orNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

type recorder struct {
	pub ActivityPublisher
	now Clock
}

// record publishes one activity. Failures are logged; the mutation already succeeded.
func (r recorder) record(s session.Session, resource models.ActivityResource, action models.ActivityAction, targetID string) {
	if r.pub == nil {
		return
	}
	a := &models.Activity{
		ID:         uuid.NewString(),
		Resource:   resource,
		Action:     action,
		TargetID:   targetID,
		Actor:      s.Actor(),
		OccurredAt: r.now().UTC(),
	}
	if err := r.pub.Publish(a.RoutingKey(), a); err != nil {
		log.Printf("[Activity] failed to publish %s: %v", a.RoutingKey(), err)
	}
}
