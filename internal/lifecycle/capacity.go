package lifecycle

import (
	"fmt"
	"math"
)

type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Unbounded is the display text used when capacity is not positive.
const Unbounded = "unbounded"

// Capacity is the display-ready attendance ratio of an event.
// Percentage is nil when the ratio is unbounded.
type Capacity struct {
	Attendees  int      `json:"attendees"`
	Limit      int      `json:"limit"`
	Percentage *float64 `json:"percentage"`
	Display    string   `json:"display"`
	BarWidth   float64  `json:"barWidth"`
	Tier       Tier     `json:"tier"`
}

func (c Capacity) Unbounded() bool {
	return c.Percentage == nil
}

// Track computes the ratio of attendees to limit. Overbooking is reported as is,
// only BarWidth is clamped to 100.
func Track(attendees, limit int) Capacity {
	c := Capacity{Attendees: attendees, Limit: limit}
	if limit <= 0 {
		c.Display = Unbounded
		c.BarWidth = 100
		c.Tier = TierHigh
		return c
	}

	pct := float64(attendees) / float64(limit) * 100
	c.Percentage = &pct
	c.Display = fmt.Sprintf("%.0f%%", math.Round(pct))
	c.BarWidth = math.Min(pct, 100)

	switch {
	case pct >= 90:
		c.Tier = TierHigh
	case pct >= 70:
		c.Tier = TierMedium
	default:
		c.Tier = TierLow
	}
	return c
}
