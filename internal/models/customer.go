package models

import "time"

type Customer struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CustomerDetail struct {
	Customer       Customer `json:"customer"`
	AttendedEvents []Event  `json:"attendedEvents"`
}

type Recency string

const (
	RecencyNew         Recency = "new"
	RecencyRecent      Recency = "recent"
	RecencyEstablished Recency = "established"
)

// RecencyAt buckets a customer by account age: up to 7 days, up to 30 days, older.
func (c Customer) RecencyAt(now time.Time) Recency {
	age := now.Sub(c.CreatedAt)
	switch {
	case age <= 7*24*time.Hour:
		return RecencyNew
	case age <= 30*24*time.Hour:
		return RecencyRecent
	default:
		return RecencyEstablished
	}
}
