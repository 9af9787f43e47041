package repository

import (
	"context"

	"natural-event-scheduler/internal/model"
)

// DraftStore durably holds at most one in-progress event draft so an
// interrupted preview can be recovered after a restart.
type DraftStore interface {
	// SaveDraft stores the draft, replacing any previous one.
	SaveDraft(ctx context.Context, draft model.EventDraft) error

	// LoadDraft returns the stored draft, or nil when there is none.
	LoadDraft(ctx context.Context) (*model.EventDraft, error)

	// ClearDraft removes the stored draft. Clearing an empty store is not
	// an error.
	ClearDraft(ctx context.Context) error
}
