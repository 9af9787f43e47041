package gcalendar

import "time"

// AuthStatus is the outcome of a calendar access probe.
type AuthStatus string

const (
	AuthGranted AuthStatus = "granted"
	AuthDenied  AuthStatus = "denied"
	AuthUnknown AuthStatus = "unknown"
)

// RecurrenceSpec describes a repeat rule for a new event. It is rendered as
// an RRULE on the wire.
type RecurrenceSpec struct {
	Frequency string // daily, weekly, monthly, yearly
	Interval  int    // >= 1
	EndDate   *time.Time
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string // empty means "primary"
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Tokyo"
	Recurrence  *RecurrenceSpec
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// CalendarInfo identifies one writable calendar collection.
type CalendarInfo struct {
	ID          string
	DisplayName string
	Color       string
	Primary     bool
}
