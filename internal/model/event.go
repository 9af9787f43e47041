package model

import (
	"strings"
	"time"
)

// Frequency is a recurrence frequency.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ParseFrequency matches a frequency string case-insensitively against the
// known set. The second return is false for anything else.
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyDaily:
		return FrequencyDaily, true
	case FrequencyWeekly:
		return FrequencyWeekly, true
	case FrequencyMonthly:
		return FrequencyMonthly, true
	case FrequencyYearly:
		return FrequencyYearly, true
	}
	return "", false
}

// RecurrenceRule describes how an event repeats.
type RecurrenceRule struct {
	Frequency Frequency  `json:"frequency"`
	Interval  int        `json:"interval"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ClampEndDate drops the end date when it is not strictly after start.
// Frequency and interval are kept.
func (r *RecurrenceRule) ClampEndDate(start time.Time) {
	if r.EndDate != nil && !r.EndDate.After(start) {
		r.EndDate = nil
	}
}

// EventDraft is the editable event flowing from parse to save. Instants
// round-trip through JSON at sub-second precision (RFC 3339 with
// nanoseconds).
type EventDraft struct {
	Title           string          `json:"title"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	Location        string          `json:"location,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Recurrence      *RecurrenceRule `json:"recurrence,omitempty"`
	CalendarID      string          `json:"calendar_id,omitempty"` // empty means store default
	EndTimeInferred bool            `json:"end_time_inferred"`
}

// SetEnd records an explicit end time. Any previously inferred end is
// superseded, so the inferred flag is cleared.
func (d *EventDraft) SetEnd(end time.Time) {
	d.End = end
	d.EndTimeInferred = false
}

// Duration is the span between start and end.
func (d *EventDraft) Duration() time.Duration {
	return d.End.Sub(d.Start)
}
