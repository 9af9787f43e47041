package event

import (
	"natural-event-scheduler/internal/model"
)

// Phase is the workflow phase tag.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseParsing
	PhasePreview
	PhaseSaving
	PhaseSaved
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseParsing:
		return "parsing"
	case PhasePreview:
		return "preview"
	case PhaseSaving:
		return "saving"
	case PhaseSaved:
		return "saved"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// State is the workflow state with its payload: Draft is set in Preview and
// Saved, Err is set in Error. The other phases carry nothing.
type State struct {
	Phase Phase
	Draft *model.EventDraft
	Err   *ParseError
}

// PartialResult summarizes what was recognized in the raw input when a full
// parse was not possible.
type PartialResult struct {
	Title     string `json:"title,omitempty"` // best-effort guess, empty when none
	FoundDate bool   `json:"found_date"`
	FoundTime bool   `json:"found_time"`
}

// ParseError is the user-facing outcome of a failed parse or save. A retry
// always builds a fresh one; instances are never mutated.
type ParseError struct {
	Message     string         `json:"message"`
	Suggestions []string       `json:"suggestions"` // ordered by relevance
	Partial     *PartialResult `json:"partial,omitempty"`
}
