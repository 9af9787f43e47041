package sqlite

import (
	"context"
	"testing"
	"time"

	"natural-event-scheduler/internal/model"
)

func newStore(t *testing.T) *DraftStore {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadDraftEmpty(t *testing.T) {
	s := newStore(t)

	draft, err := s.LoadDraft(context.Background())
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if draft != nil {
		t.Fatalf("expected nil draft, got %+v", draft)
	}
}

func TestDraftRoundTripPreservesSubsecond(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	loc := time.FixedZone("JST", 9*3600)
	start := time.Date(2025, 12, 9, 13, 0, 0, 123456789, loc)
	end := start.Add(45 * time.Minute)
	until := start.AddDate(0, 1, 0)

	original := model.EventDraft{
		Title:    "Lunch with Alex",
		Start:    start,
		End:      end,
		Location: "Shibuya",
		Notes:    "bring the contract",
		Recurrence: &model.RecurrenceRule{
			Frequency: model.FrequencyWeekly,
			Interval:  2,
			EndDate:   &until,
		},
		CalendarID:      "team-id",
		EndTimeInferred: true,
	}

	if err := s.SaveDraft(ctx, original); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	loaded, err := s.LoadDraft(ctx)
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected a draft")
	}

	if loaded.Title != original.Title || loaded.Location != original.Location || loaded.Notes != original.Notes {
		t.Errorf("text fields changed: %+v", loaded)
	}
	if !loaded.Start.Equal(start) {
		t.Errorf("start drifted: %v != %v", loaded.Start, start)
	}
	if loaded.Start.Nanosecond() != 123456789 {
		t.Errorf("sub-second precision lost: %d", loaded.Start.Nanosecond())
	}
	if !loaded.End.Equal(end) {
		t.Errorf("end drifted: %v != %v", loaded.End, end)
	}
	if !loaded.EndTimeInferred {
		t.Error("inferred flag lost")
	}
	if loaded.Recurrence == nil || loaded.Recurrence.Frequency != model.FrequencyWeekly ||
		loaded.Recurrence.Interval != 2 || loaded.Recurrence.EndDate == nil ||
		!loaded.Recurrence.EndDate.Equal(until) {
		t.Errorf("recurrence changed: %+v", loaded.Recurrence)
	}
	if loaded.CalendarID != "team-id" {
		t.Errorf("calendar ID changed: %q", loaded.CalendarID)
	}
}

func TestSaveDraftReplaces(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	first := model.EventDraft{Title: "first", Start: time.Now(), End: time.Now().Add(time.Hour)}
	second := model.EventDraft{Title: "second", Start: time.Now(), End: time.Now().Add(time.Hour)}

	if err := s.SaveDraft(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDraft(ctx, second); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadDraft(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Title != "second" {
		t.Errorf("expected replacement, got %q", loaded.Title)
	}
}

func TestWithKeyIsolatesSlots(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	a := s.WithKey("chat:1")
	b := s.WithKey("chat:2")

	if err := a.SaveDraft(ctx, model.EventDraft{Title: "for chat 1", Start: time.Now(), End: time.Now()}); err != nil {
		t.Fatal(err)
	}

	got, err := b.LoadDraft(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("chat 2 must not see chat 1's draft, got %+v", got)
	}

	if err := b.ClearDraft(ctx); err != nil {
		t.Fatal(err)
	}
	got, err = a.LoadDraft(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Title != "for chat 1" {
		t.Fatalf("chat 1's draft should survive chat 2's clear, got %+v", got)
	}
}

func TestClearDraft(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	// Clearing an empty store is fine.
	if err := s.ClearDraft(ctx); err != nil {
		t.Fatalf("ClearDraft on empty store: %v", err)
	}

	if err := s.SaveDraft(ctx, model.EventDraft{Title: "x", Start: time.Now(), End: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearDraft(ctx); err != nil {
		t.Fatalf("ClearDraft: %v", err)
	}

	loaded, err := s.LoadDraft(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != nil {
		t.Fatalf("draft should be gone, got %+v", loaded)
	}
}
