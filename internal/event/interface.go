package event

import (
	"context"

	"natural-event-scheduler/internal/model"
	"natural-event-scheduler/pkg/gcalendar"
	"natural-event-scheduler/pkg/gemini"
)

// Generator turns one natural-language sentence into structured event fields.
// It is an opaque, possibly slow collaborator; callers bound it with a
// context deadline.
type Generator interface {
	ExtractEvent(ctx context.Context, req gemini.EventRequest) (*gemini.EventFields, error)
}

// CalendarStore is the external calendar the workflow writes into.
type CalendarStore interface {
	CheckAccess(ctx context.Context) (gcalendar.AuthStatus, error)
	ListCalendars(ctx context.Context) ([]gcalendar.CalendarInfo, error)
	DefaultCalendarID(ctx context.Context) (string, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// UseCase drives the event workflow: parse, preview edits, save with a
// bounded undo window, and recovery of a persisted draft. All methods are
// safe for use from a single delivery goroutine per instance; state
// transitions are serialized internally.
type UseCase interface {
	// Parse runs the text through the generator and moves the workflow to
	// Preview or Error. Blank input is a no-op that keeps the current state.
	Parse(ctx context.Context, sc model.Scope, text string) State

	// EditDraft applies an in-place edit to the preview draft and
	// re-persists it. Fails with ErrNoDraft outside Preview.
	EditDraft(ctx context.Context, edit func(*model.EventDraft)) (State, error)

	// Save writes the preview draft to the calendar store and opens the
	// undo window. A no-op outside Preview.
	Save(ctx context.Context, sc model.Scope) State

	// Undo deletes the just-saved event while the undo window is open.
	// After the window closes it returns ErrUndoUnavailable and keeps the
	// current state. A failed delete keeps the Saved state and returns the
	// error.
	Undo(ctx context.Context, sc model.Scope) (State, error)

	// Reset returns to Idle from any state and clears the persisted draft.
	Reset(ctx context.Context) State

	// Recover re-enters Preview with a previously persisted draft, if any.
	Recover(ctx context.Context) (State, bool)

	// State returns the current workflow state.
	State() State

	// CanUndo reports whether the undo window is still open.
	CanUndo() bool

	// Calendars returns the writable calendars from the last refresh.
	Calendars() []gcalendar.CalendarInfo
}
