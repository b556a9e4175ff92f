package lifecycle

import "time"

type Status string

const (
	StatusUpcoming     Status = "upcoming"
	StatusRegistration Status = "registration"
	StatusClosed       Status = "closed"
	StatusActive       Status = "active"
	StatusCompleted    Status = "completed"
)

// Statuses lists every status in timeline order.
var Statuses = []Status{StatusUpcoming, StatusRegistration, StatusClosed, StatusActive, StatusCompleted}

var statusLabels = map[Status]string{
	StatusUpcoming:     "Upcoming",
	StatusRegistration: "Registration Open",
	StatusClosed:       "Registration Closed",
	StatusActive:       "Active",
	StatusCompleted:    "Completed",
}

func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// DeriveStatus classifies now against the window. Guards are checked in order and
// the first match wins, so unordered windows still yield exactly one status.
func DeriveStatus(now time.Time, w Window) Status {
	switch {
	case now.Before(w.RegistrationStart):
		return StatusUpcoming
	case !now.After(w.RegistrationEnd):
		return StatusRegistration
	case now.Before(w.StartTime):
		return StatusClosed
	case !now.After(w.EndTime):
		return StatusActive
	default:
		return StatusCompleted
	}
}
