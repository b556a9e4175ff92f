package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/club-admin/internal/backend"
	"github.com/Eursukkul/club-admin/internal/lifecycle"
	"github.com/Eursukkul/club-admin/internal/listing"
	"github.com/Eursukkul/club-admin/internal/models"
	"github.com/Eursukkul/club-admin/internal/session"
)

// EventSnapshot is an event with its status and capacity derived at one instant.
type EventSnapshot struct {
	Event    models.Event
	Status   lifecycle.Status
	Capacity lifecycle.Capacity
}

type EventFilter struct {
	Search string
	Status string
}

// EventInput is the event form. Instants holds the raw startTime, endTime,
// registrationStart and registrationEnd values.
type EventInput struct {
	Name        string
	Description string
	Capacity    int
	Password    string
	Images      []string
	Instants    map[string]string
}

type EventService interface {
	ListEvents(ctx context.Context, s session.Session, f EventFilter) ([]EventSnapshot, error)
	GetEvent(ctx context.Context, s session.Session, id string) (EventSnapshot, error)
	CreateEvent(ctx context.Context, s session.Session, in EventInput) error
	UpdateEvent(ctx context.Context, s session.Session, id string, in EventInput) (EventSnapshot, error)
	DeleteEvent(ctx context.Context, s session.Session, id string) error
}

type eventService struct {
	api backend.EventAPI
	rec recorder
	loc *time.Location
	now Clock
}

func NewEventService(api backend.EventAPI, pub ActivityPublisher, loc *time.Location, now Clock) EventService {
	if loc == nil {
		loc = time.UTC
	}
	now = orNow(now)
	return &eventService{api: api, rec: recorder{pub: pub, now: now}, loc: loc, now: now}
}

func (s *eventService) snapshot(e models.Event, now time.Time) EventSnapshot {
	return EventSnapshot{
		Event:    e,
		Status:   lifecycle.DeriveStatus(now, lifecycle.WindowOf(e)),
		Capacity: lifecycle.Track(len(e.Attendees), e.Capacity),
	}
}

func (s *eventService) ListEvents(ctx context.Context, sess session.Session, f EventFilter) ([]EventSnapshot, error) {
	var want lifecycle.Status
	if f.Status != "" && f.Status != "all" {
		want = lifecycle.Status(f.Status)
		if !want.Valid() {
			return nil, lifecycle.FieldErrors{"status": "Unknown status"}
		}
	}

	events, err := s.api.ListEvents(ctx, sess).Unpack()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events = listing.Apply(events, listing.Query{Search: f.Search}, listing.Events)

	now := s.now()
	out := make([]EventSnapshot, 0, len(events))
	for _, e := range events {
		snap := s.snapshot(e, now)
		if want != "" && snap.Status != want {
			continue
		}
		out = append(out, snap)
	}
	return out, nil
}

func (s *eventService) GetEvent(ctx context.Context, sess session.Session, id string) (EventSnapshot, error) {
	e, err := s.api.GetEvent(ctx, sess, id).Unpack()
	if err != nil {
		return EventSnapshot{}, fmt.Errorf("get event %s: %w", id, err)
	}
	return s.snapshot(e, s.now()), nil
}

// build validates in and returns the event it describes. Parse failures take
// precedence over the Required message for the same field.
func (s *eventService) build(in EventInput) (models.Event, error) {
	c := lifecycle.Candidate{Name: in.Name, Description: in.Description, Capacity: in.Capacity}
	parseErrs := lifecycle.ParseFields(&c, in.Instants, s.loc)
	errs := lifecycle.Validate(c).Merge(parseErrs)
	if err := errs.Err(); err != nil {
		return models.Event{}, err
	}

	return models.Event{
		Name:              c.Name,
		Description:       c.Description,
		Capacity:          c.Capacity,
		Password:          in.Password,
		Images:            in.Images,
		StartTime:         *c.StartTime,
		EndTime:           *c.EndTime,
		RegistrationStart: *c.RegistrationStart,
		RegistrationEnd:   *c.RegistrationEnd,
	}, nil
}

func (s *eventService) CreateEvent(ctx context.Context, sess session.Session, in EventInput) error {
	e, err := s.build(in)
	if err != nil {
		return err
	}
	if e.Images == nil {
		e.Images = []string{}
	}
	e.Attendees = []models.Attendee{}

	if err := s.api.CreateEvent(ctx, sess, e).Err(); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	s.rec.record(sess, models.ResourceEvent, models.ActionCreated, "")
	return nil
}

// UpdateEvent replaces the whole record. Attendees and fields the form does not
// carry are taken from the current version.
func (s *eventService) UpdateEvent(ctx context.Context, sess session.Session, id string, in EventInput) (EventSnapshot, error) {
	e, err := s.build(in)
	if err != nil {
		return EventSnapshot{}, err
	}

	current, err := s.api.GetEvent(ctx, sess, id).Unpack()
	if err != nil {
		return EventSnapshot{}, fmt.Errorf("get event %s: %w", id, err)
	}
	e.ID = current.ID
	e.Attendees = current.Attendees
	e.CreatedAt = current.CreatedAt
	if e.Images == nil {
		e.Images = current.Images
	}
	if e.Password == "" {
		e.Password = current.Password
	}

	updated, err := s.api.UpdateEvent(ctx, sess, id, e).Unpack()
	if err != nil {
		return EventSnapshot{}, fmt.Errorf("update event %s: %w", id, err)
	}
	if updated.ID == "" {
		updated = e
	}

	s.rec.record(sess, models.ResourceEvent, models.ActionUpdated, id)
	return s.snapshot(updated, s.now()), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, sess session.Session, id string) error {
	if err := s.api.DeleteEvent(ctx, sess, id).Err(); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	s.rec.record(sess, models.ResourceEvent, models.ActionDeleted, id)
	return nil
}
