package gcalendar

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by Disabled for every write operation.
var ErrNotConfigured = errors.New("google calendar is not configured")

// Disabled is a stand-in store used when no calendar credentials are set.
// Parsing and previews keep working; saves report an unknown access status.
type Disabled struct{}

func (Disabled) CheckAccess(ctx context.Context) (AuthStatus, error) {
	return AuthUnknown, nil
}

func (Disabled) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	return nil, nil
}

func (Disabled) DefaultCalendarID(ctx context.Context) (string, error) {
	return "", nil
}

func (Disabled) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	return nil, ErrNotConfigured
}

func (Disabled) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return ErrNotConfigured
}
