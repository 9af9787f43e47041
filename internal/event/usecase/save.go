package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"natural-event-scheduler/internal/event"
	"natural-event-scheduler/internal/model"
	"natural-event-scheduler/pkg/gcalendar"
)

// Save writes the preview draft to the calendar store and opens the undo
// window. Outside Preview it is a no-op.
func (uc *implUseCase) Save(ctx context.Context, sc model.Scope) event.State {
	uc.mu.Lock()
	if uc.state.Phase != event.PhasePreview || uc.state.Draft == nil {
		st := uc.state
		uc.mu.Unlock()
		return st
	}
	draft := *uc.state.Draft
	uc.opSeq++
	seq := uc.opSeq
	uc.stopUndoTimerLocked()
	uc.canUndo = false
	uc.state = event.State{Phase: event.PhaseSaving}
	uc.mu.Unlock()

	eventID, calendarID, err := uc.runSave(ctx, draft)

	uc.mu.Lock()
	if uc.opSeq != seq {
		st := uc.state
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "event.usecase.Save: discarded stale result for user %s", sc.UserID)
		return st
	}
	if err != nil {
		uc.state = event.State{Phase: event.PhaseError, Err: classifySaveFailure(err)}
		st := uc.state
		uc.mu.Unlock()
		uc.l.Errorf(ctx, "event.usecase.Save: %v", err)
		return st
	}

	uc.savedEventID = eventID
	uc.savedCalendarID = calendarID
	saved := draft
	uc.state = event.State{Phase: event.PhaseSaved, Draft: &saved}
	uc.canUndo = true
	uc.undoTimer = time.AfterFunc(uc.cfg.UndoWindow, func() { uc.expireUndo(seq) })
	st := uc.state
	uc.mu.Unlock()

	uc.clearDraftStore(ctx)
	uc.l.Infof(ctx, "event.usecase.Save: created event %s in calendar %s", eventID, calendarID)
	return st
}

func (uc *implUseCase) runSave(ctx context.Context, draft model.EventDraft) (eventID, calendarID string, err error) {
	cctx, cancel := context.WithTimeout(ctx, uc.cfg.SaveTimeout)
	defer cancel()

	status, err := uc.store.CheckAccess(cctx)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", event.ErrUnknownAuthStatus, err)
	}
	switch status {
	case gcalendar.AuthDenied:
		return "", "", event.ErrPermissionDenied
	case gcalendar.AuthGranted:
	default:
		return "", "", event.ErrUnknownAuthStatus
	}

	calendarID = draft.CalendarID
	if calendarID == "" {
		calendarID, err = uc.store.DefaultCalendarID(cctx)
		if err != nil || calendarID == "" {
			calendarID = "primary"
		}
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     draft.Title,
		Description: draft.Notes,
		Location:    draft.Location,
		StartTime:   draft.Start,
		EndTime:     draft.End,
		Timezone:    uc.timezone,
	}
	if draft.Recurrence != nil {
		req.Recurrence = &gcalendar.RecurrenceSpec{
			Frequency: string(draft.Recurrence.Frequency),
			Interval:  draft.Recurrence.Interval,
			EndDate:   draft.Recurrence.EndDate,
		}
	}

	type result struct {
		created *gcalendar.Event
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		created, err := uc.store.CreateEvent(cctx, req)
		ch <- result{created: created, err: err}
	}()

	select {
	case <-cctx.Done():
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return "", "", event.ErrTimeout
		}
		return "", "", cctx.Err()
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return "", "", event.ErrTimeout
			}
			return "", "", fmt.Errorf("%w: %v", event.ErrSaveFailed, r.err)
		}
		return r.created.ID, calendarID, nil
	}
}

// Undo deletes the just-saved event while the undo window is open. After the
// window closes it is a no-op. A failed delete keeps the Saved state.
func (uc *implUseCase) Undo(ctx context.Context, sc model.Scope) (event.State, error) {
	uc.mu.Lock()
	if uc.state.Phase != event.PhaseSaved || !uc.canUndo {
		st := uc.state
		uc.mu.Unlock()
		return st, event.ErrUndoUnavailable
	}
	eventID := uc.savedEventID
	calendarID := uc.savedCalendarID
	uc.mu.Unlock()

	if err := uc.store.DeleteEvent(ctx, calendarID, eventID); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Undo: delete event %s failed: %v", eventID, err)
		return uc.State(), fmt.Errorf("failed to undo save: %w", err)
	}

	uc.mu.Lock()
	uc.opSeq++
	uc.stopUndoTimerLocked()
	uc.canUndo = false
	uc.savedEventID = ""
	uc.savedCalendarID = ""
	uc.state = event.State{Phase: event.PhaseIdle}
	st := uc.state
	uc.mu.Unlock()

	uc.l.Infof(ctx, "event.usecase.Undo: removed event %s for user %s", eventID, sc.UserID)
	return st, nil
}

// expireUndo closes the undo window when the timer fires, unless a newer
// operation already moved the workflow on.
func (uc *implUseCase) expireUndo(seq uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.opSeq != seq {
		return
	}
	uc.canUndo = false
	uc.savedEventID = ""
	uc.savedCalendarID = ""
}

func classifySaveFailure(err error) *event.ParseError {
	switch {
	case errors.Is(err, event.ErrPermissionDenied):
		return &event.ParseError{
			Message: "Calendar access was denied, so the event was not saved.",
			Suggestions: []string{
				"Grant calendar access and try saving again",
			},
		}
	case errors.Is(err, event.ErrUnknownAuthStatus):
		return &event.ParseError{
			Message: "Couldn't confirm calendar access.",
			Suggestions: []string{
				"Check the calendar permissions and try again",
			},
		}
	case errors.Is(err, event.ErrTimeout):
		return &event.ParseError{
			Message: "Saving took too long and was cancelled.",
			Suggestions: []string{
				"Try again in a moment",
				"Check the calendar permissions",
			},
		}
	default:
		return &event.ParseError{
			Message: "Failed to save the event.",
			Suggestions: []string{
				"Check the calendar permissions and try again",
			},
		}
	}
}
