package models

import "time"

type Offer struct {
	ID          string    `json:"_id,omitempty"`
	Offer       string    `json:"offer"`
	Description string    `json:"description"`
	IsLive      bool      `json:"isLive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
