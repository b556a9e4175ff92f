package models

import "time"

type ActivityAction string

const (
	ActionCreated ActivityAction = "created"
	ActionUpdated ActivityAction = "updated"
	ActionDeleted ActivityAction = "deleted"
	ActionToggled ActivityAction = "toggled"
)

// ActivityResource is the middle segment of the routing key and the feed's resource filter.
type ActivityResource string

const (
	ResourceEvent           ActivityResource = "event"
	ResourceMenuCategory    ActivityResource = "menu_category"
	ResourceMenuSubcategory ActivityResource = "menu_subcategory"
	ResourceMenuItem        ActivityResource = "menu_item"
	ResourceHappyHour       ActivityResource = "happy_hour"
	ResourceOffer           ActivityResource = "offer"
	ResourceGalleryImage    ActivityResource = "gallery_image"
	ResourceCustomer        ActivityResource = "customer"
)

// Activity is one admin mutation, published by the dashboard and stored by the worker.
// CreatedAt is the worker's insert time and never travels on the wire.
type Activity struct {
	ID         string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Resource   ActivityResource `gorm:"type:varchar(40);not null;index" json:"resource"`
	Action     ActivityAction   `gorm:"type:varchar(20);not null" json:"action"`
	TargetID   string           `gorm:"type:varchar(64)" json:"targetId"`
	Actor      string           `gorm:"type:varchar(64);not null" json:"actor"`
	OccurredAt time.Time        `gorm:"not null;index" json:"occurredAt"`
	CreatedAt  time.Time        `json:"-"`
}

// RoutingKey is the topic the activity is published under, e.g. admin.offer.toggled.
func (a *Activity) RoutingKey() string {
	return "admin." + string(a.Resource) + "." + string(a.Action)
}
