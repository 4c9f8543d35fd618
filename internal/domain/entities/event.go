package entities

import (
	"strings"
	"time"

	"medsite/pkg/multilingual"
	"medsite/pkg/tz"
)

// EventStatus is the timeline position of an event.
type EventStatus string

const (
	StatusUpcoming EventStatus = "upcoming"
	StatusPast     EventStatus = "past"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Event is the part of an event record needed to place it on the timeline.
type Event struct {
	// Status as sent by the backend, "" when absent or unknown.
	Status EventStatus
	// Date is zero when the record has none or it does not parse.
	Date     time.Time
	Location multilingual.Text
}

// EventFromRecord reads an event from a backend record. Dates without an
// offset are taken as Bishkek local time.
func EventFromRecord(r multilingual.Record) Event {
	e := Event{Location: multilingual.TextOf(r, "location")}
	switch s := EventStatus(strings.ToLower(r.String("status"))); s {
	case StatusUpcoming, StatusPast:
		e.Status = s
	}
	for _, key := range []string{"date", "event_date", "start_date"} {
		if raw := strings.TrimSpace(r.String(key)); raw != "" {
			e.Date = parseDate(raw)
			break
		}
	}
	return e
}

func parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, tz.Bishkek); err == nil {
			return t
		}
	}
	return time.Time{}
}

// StatusAt returns the backend status when set, otherwise derives it from
// the date: an event stays upcoming until its Bishkek day is over. Events
// without either are upcoming.
func (e Event) StatusAt(now time.Time) EventStatus {
	if e.Status != "" {
		return e.Status
	}
	if e.Date.IsZero() {
		return StatusUpcoming
	}
	d := e.Date.In(tz.Bishkek)
	endOfDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, tz.Bishkek).AddDate(0, 0, 1)
	if now.Before(endOfDay) {
		return StatusUpcoming
	}
	return StatusPast
}
