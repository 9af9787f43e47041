package usecase

import (
	"context"

	"natural-event-scheduler/internal/event"
	"natural-event-scheduler/internal/model"
	"natural-event-scheduler/pkg/gcalendar"
)

// State returns the current workflow state.
func (uc *implUseCase) State() event.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// CanUndo reports whether the undo window is still open.
func (uc *implUseCase) CanUndo() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.canUndo
}

// Calendars returns the writable calendars from the last refresh.
func (uc *implUseCase) Calendars() []gcalendar.CalendarInfo {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]gcalendar.CalendarInfo, len(uc.calendars))
	copy(out, uc.calendars)
	return out
}

// EditDraft applies an in-place edit to the preview draft and re-persists it.
func (uc *implUseCase) EditDraft(ctx context.Context, edit func(*model.EventDraft)) (event.State, error) {
	uc.mu.Lock()
	if uc.state.Phase != event.PhasePreview || uc.state.Draft == nil {
		st := uc.state
		uc.mu.Unlock()
		return st, event.ErrNoDraft
	}
	edit(uc.state.Draft)
	draft := *uc.state.Draft
	st := uc.state
	uc.mu.Unlock()

	uc.persistDraft(ctx, draft)
	return st, nil
}

// Reset returns to Idle from any state, cancels any pending undo window and
// clears the persisted draft.
func (uc *implUseCase) Reset(ctx context.Context) event.State {
	uc.mu.Lock()
	uc.opSeq++
	uc.stopUndoTimerLocked()
	uc.canUndo = false
	uc.savedEventID = ""
	uc.savedCalendarID = ""
	uc.state = event.State{Phase: event.PhaseIdle}
	st := uc.state
	uc.mu.Unlock()

	uc.clearDraftStore(ctx)
	return st
}

// Recover re-enters Preview with the persisted draft, if there is one.
func (uc *implUseCase) Recover(ctx context.Context) (event.State, bool) {
	draft, err := uc.drafts.LoadDraft(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase.Recover: load draft failed: %v", err)
		return uc.State(), false
	}
	if draft == nil {
		return uc.State(), false
	}

	uc.mu.Lock()
	uc.opSeq++
	uc.stopUndoTimerLocked()
	uc.canUndo = false
	uc.state = event.State{Phase: event.PhasePreview, Draft: draft}
	st := uc.state
	uc.mu.Unlock()
	return st, true
}

// stopUndoTimerLocked cancels the pending undo expiry. Callers hold uc.mu.
func (uc *implUseCase) stopUndoTimerLocked() {
	if uc.undoTimer != nil {
		uc.undoTimer.Stop()
		uc.undoTimer = nil
	}
}

// persistDraft writes the draft to the recovery store. Persistence is best
// effort; a failure is logged and does not block the workflow.
func (uc *implUseCase) persistDraft(ctx context.Context, draft model.EventDraft) {
	if err := uc.drafts.SaveDraft(ctx, draft); err != nil {
		uc.l.Warnf(ctx, "event.usecase: persist draft failed: %v", err)
	}
}

func (uc *implUseCase) clearDraftStore(ctx context.Context) {
	if err := uc.drafts.ClearDraft(ctx); err != nil {
		uc.l.Warnf(ctx, "event.usecase: clear draft failed: %v", err)
	}
}

// refreshCalendars asks the store for access and the writable calendar list.
// Best effort; the preview works without it.
func (uc *implUseCase) refreshCalendars(ctx context.Context) {
	status, err := uc.store.CheckAccess(ctx)
	if err != nil || status != gcalendar.AuthGranted {
		uc.l.Debugf(ctx, "event.usecase: calendar access not granted (status=%s, err=%v)", status, err)
		return
	}
	cals, err := uc.store.ListCalendars(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "event.usecase: list calendars failed: %v", err)
		return
	}

	uc.mu.Lock()
	uc.calendars = cals
	uc.mu.Unlock()
}
