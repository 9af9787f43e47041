package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"natural-event-scheduler/internal/event"
	"natural-event-scheduler/internal/model"
	"natural-event-scheduler/pkg/gemini"
	"natural-event-scheduler/pkg/langscan"
)

// Parse runs the natural-language text through the generator and moves the
// workflow to Preview or Error. Blank input keeps the current state.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, text string) event.State {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return uc.State()
	}

	uc.mu.Lock()
	uc.opSeq++
	seq := uc.opSeq
	uc.stopUndoTimerLocked()
	uc.canUndo = false
	uc.state = event.State{Phase: event.PhaseParsing}
	uc.mu.Unlock()

	draft, err := uc.runParse(ctx, trimmed)

	uc.mu.Lock()
	if uc.opSeq != seq {
		// A newer operation superseded this parse; drop the late result.
		st := uc.state
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "event.usecase.Parse: discarded stale result for user %s", sc.UserID)
		return st
	}
	if err != nil {
		uc.state = event.State{
			Phase: event.PhaseError,
			Err:   classifyParseFailure(err, trimmed),
		}
		st := uc.state
		uc.mu.Unlock()
		uc.l.Warnf(ctx, "event.usecase.Parse: %v", err)
		return st
	}
	uc.state = event.State{Phase: event.PhasePreview, Draft: draft}
	st := uc.state
	uc.mu.Unlock()

	uc.persistDraft(ctx, *draft)
	uc.refreshCalendars(ctx)
	return st
}

func (uc *implUseCase) runParse(ctx context.Context, text string) (*model.EventDraft, error) {
	if len([]rune(text)) > uc.cfg.MaxInputLength {
		return nil, fmt.Errorf("%w: %d characters (limit %d)", event.ErrInputTooLong, len([]rune(text)), uc.cfg.MaxInputLength)
	}

	cctx, cancel := context.WithTimeout(ctx, uc.cfg.ParseTimeout)
	defer cancel()

	req := gemini.EventRequest{
		Text:        text,
		Timezone:    uc.timezone,
		CurrentTime: uc.codec.Format(uc.codec.Now()),
	}

	type result struct {
		fields *gemini.EventFields
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		fields, err := uc.generator.ExtractEvent(cctx, req)
		ch <- result{fields: fields, err: err}
	}()

	var fields *gemini.EventFields
	select {
	case <-cctx.Done():
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return nil, event.ErrTimeout
		}
		return nil, cctx.Err()
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, context.DeadlineExceeded) {
				return nil, event.ErrTimeout
			}
			return nil, fmt.Errorf("generator failed: %w", r.err)
		}
		fields = r.fields
	}

	return uc.buildDraft(fields)
}

// buildDraft decodes and normalizes the raw generator output into a draft.
func (uc *implUseCase) buildDraft(fields *gemini.EventFields) (*model.EventDraft, error) {
	start, err := uc.codec.Parse(fields.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q", event.ErrInvalidDateFormat, fields.Start)
	}

	var end *time.Time
	if fields.End != "" {
		t, err := uc.codec.Parse(fields.End)
		if err != nil {
			return nil, fmt.Errorf("%w: end %q", event.ErrInvalidDateFormat, fields.End)
		}
		end = &t
	}

	draft := &model.EventDraft{
		Title:           strings.TrimSpace(fields.Title),
		Start:           start,
		End:             uc.codec.ApplyDefaultDuration(start, end),
		Location:        strings.TrimSpace(fields.Location),
		Notes:           strings.TrimSpace(fields.Notes),
		EndTimeInferred: end == nil,
	}

	if fields.RecurrenceFrequency != "" {
		if freq, ok := model.ParseFrequency(fields.RecurrenceFrequency); ok {
			interval := fields.RecurrenceInterval
			if interval < 1 {
				interval = 1
			}
			rule := &model.RecurrenceRule{Frequency: freq, Interval: interval}
			if fields.RecurrenceEndDate != "" {
				// A malformed end date drops only the end date, not the rule.
				if until, err := uc.codec.Parse(fields.RecurrenceEndDate); err == nil {
					rule.EndDate = &until
				}
			}
			rule.ClampEndDate(start)
			draft.Recurrence = rule
		}
	}

	return draft, nil
}

// classifyParseFailure maps a failure to a user-facing error with recovery
// suggestions. The language scanner always runs so the user sees what was
// recognized even when the generator itself failed.
func classifyParseFailure(err error, raw string) *event.ParseError {
	partial := scanPartial(raw)

	switch {
	case errors.Is(err, event.ErrTimeout):
		return &event.ParseError{
			Message: "Parsing took too long and was cancelled.",
			Suggestions: []string{
				"Try a shorter, simpler sentence",
				"Check your network connection and try again",
			},
			Partial: partial,
		}
	case errors.Is(err, event.ErrInputTooLong):
		return &event.ParseError{
			Message: "That message is too long to parse.",
			Suggestions: []string{
				"Shorten the text to a single sentence",
				"Send separate events as separate messages",
			},
			Partial: partial,
		}
	case errors.Is(err, event.ErrInvalidDateFormat):
		return &event.ParseError{
			Message: "I couldn't work out the date and time.",
			Suggestions: []string{
				"Include an explicit date, like \"Dec 15\" or \"tomorrow\"",
				"Add a time, like \"3pm\" or \"14:30\"",
			},
			Partial: partial,
		}
	default:
		return &event.ParseError{
			Message: "I couldn't turn that into an event.",
			Suggestions: []string{
				"Mention when the event happens, like \"tomorrow at 3pm\"",
				"Keep it to one event per message",
			},
			Partial: partial,
		}
	}
}

func scanPartial(raw string) *event.PartialResult {
	return &event.PartialResult{
		Title:     langscan.ExtractPotentialTitle(raw),
		FoundDate: langscan.ContainsDateKeyword(raw),
		FoundTime: langscan.ContainsTimePattern(raw),
	}
}
