package dto

import (
	"time"

	"github.com/Eursukkul/club-admin/internal/lifecycle"
	"github.com/Eursukkul/club-admin/internal/models"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// LocalInputs are the four instants formatted for datetime-local inputs.
type LocalInputs struct {
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	RegistrationStart string `json:"registrationStart"`
	RegistrationEnd   string `json:"registrationEnd"`
}

type EventView struct {
	models.Event
	Status      lifecycle.Status   `json:"status"`
	StatusLabel string             `json:"statusLabel"`
	Capacity    lifecycle.Capacity `json:"capacityInfo"`
	Inputs      LocalInputs        `json:"inputs"`
}

func ToEventView(e models.Event, status lifecycle.Status, capacity lifecycle.Capacity, loc *time.Location) EventView {
	return EventView{
		Event:       e,
		Status:      status,
		StatusLabel: status.Label(),
		Capacity:    capacity,
		Inputs: LocalInputs{
			StartTime:         lifecycle.FormatLocalInput(e.StartTime, loc),
			EndTime:           lifecycle.FormatLocalInput(e.EndTime, loc),
			RegistrationStart: lifecycle.FormatLocalInput(e.RegistrationStart, loc),
			RegistrationEnd:   lifecycle.FormatLocalInput(e.RegistrationEnd, loc),
		},
	}
}

type CustomerView struct {
	models.Customer
	Recency models.Recency `json:"recency"`
}

func ToCustomerView(c models.Customer, now time.Time) CustomerView {
	return CustomerView{Customer: c, Recency: c.RecencyAt(now)}
}

type GalleryResponse struct {
	Images []models.GalleryImage `json:"images"`
	Counts map[string]int        `json:"counts"`
}

type BulkDeleteResponse struct {
	Deleted []string          `json:"deleted"`
	Failed  map[string]string `json:"failed"`
	Gallery GalleryResponse   `json:"gallery"`
}
