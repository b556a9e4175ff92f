// Package lifecycle holds the event scheduling rules: form validation of the
// registration and event windows, status derivation, and capacity display.
package lifecycle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Eursukkul/club-admin/internal/models"
)

const (
	MsgRequired         = "Required"
	MsgInvalidDate      = "Invalid date"
	MsgCapacityPositive = "Capacity must be a positive number"
	MsgEndAfterStart    = "End must be after start"
	MsgRegEndAfterStart = "Registration end must be after start"
	MsgRegBeforeEvent   = "Registration must end before event starts"
)

// LocalInputLayout is the value format of an HTML datetime-local input.
const LocalInputLayout = "2006-01-02T15:04"

// Window is the four instants that drive an event's lifecycle.
type Window struct {
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	StartTime         time.Time
	EndTime           time.Time
}

func WindowOf(e models.Event) Window {
	return Window{
		RegistrationStart: e.RegistrationStart,
		RegistrationEnd:   e.RegistrationEnd,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
	}
}

// Candidate is an event form after parsing. Nil instants were left empty.
type Candidate struct {
	Name              string
	Description       string
	Capacity          int
	StartTime         *time.Time
	EndTime           *time.Time
	RegistrationStart *time.Time
	RegistrationEnd   *time.Time
}

// FieldErrors maps a form field (JSON name) to its message. Empty means valid.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fe[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns fe as an error, or nil when there is nothing to report.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Merge copies other into fe; entries in other win.
func (fe FieldErrors) Merge(other FieldErrors) FieldErrors {
	for k, v := range other {
		fe[k] = v
	}
	return fe
}

// AsFieldErrors unwraps err to FieldErrors if it carries any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Validate checks required fields and the window ordering rules in one pass.
// Rule 3 is evaluated after rule 2, so its message replaces rule 2's on registrationEnd.
func Validate(c Candidate) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = MsgRequired
	}
	if strings.TrimSpace(c.Description) == "" {
		errs["description"] = MsgRequired
	}
	switch {
	case c.Capacity == 0:
		errs["capacity"] = MsgRequired
	case c.Capacity < 0:
		errs["capacity"] = MsgCapacityPositive
	}

	required := map[string]*time.Time{
		"startTime":         c.StartTime,
		"endTime":           c.EndTime,
		"registrationStart": c.RegistrationStart,
		"registrationEnd":   c.RegistrationEnd,
	}
	for field, v := range required {
		if v == nil {
			errs[field] = MsgRequired
		}
	}

	if c.StartTime != nil && c.EndTime != nil && !c.StartTime.Before(*c.EndTime) {
		errs["endTime"] = MsgEndAfterStart
	}
	if c.RegistrationStart != nil && c.RegistrationEnd != nil && !c.RegistrationStart.Before(*c.RegistrationEnd) {
		errs["registrationEnd"] = MsgRegEndAfterStart
	}
	if c.RegistrationEnd != nil && c.StartTime != nil && c.RegistrationEnd.After(*c.StartTime) {
		errs["registrationEnd"] = MsgRegBeforeEvent
	}

	return errs
}

// ParseInstant accepts an RFC 3339 instant or a datetime-local value read in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{LocalInputLayout, LocalInputLayout + ":05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse instant %q: unsupported format", s)
}

// FormatLocalInput renders t as a datetime-local value in loc.
func FormatLocalInput(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(LocalInputLayout)
}

// ParseFields parses the four raw instants of a form into c. Empty values stay nil,
// unparseable ones are reported as MsgInvalidDate.
func ParseFields(c *Candidate, raw map[string]string, loc *time.Location) FieldErrors {
	errs := FieldErrors{}
	targets := map[string]**time.Time{
		"startTime":         &c.StartTime,
		"endTime":           &c.EndTime,
		"registrationStart": &c.RegistrationStart,
		"registrationEnd":   &c.RegistrationEnd,
	}
	for field, dst := range targets {
		v := strings.TrimSpace(raw[field])
		if v == "" {
			*dst = nil
			continue
		}
		t, err := ParseInstant(v, loc)
		if err != nil {
			errs[field] = MsgInvalidDate
			*dst = nil
			continue
		}
		*dst = &t
	}
	return errs
}
