package models

import "time"

type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Event struct {
	ID                string     `json:"_id,omitempty"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Capacity          int        `json:"capacity"`
	Password          string     `json:"password,omitempty"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           time.Time  `json:"endTime"`
	RegistrationStart time.Time  `json:"registrationStart"`
	RegistrationEnd   time.Time  `json:"registrationEnd"`
	Images            []string   `json:"images"`
	Attendees         []Attendee `json:"attendees"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}
