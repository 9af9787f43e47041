package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"natural-event-scheduler/internal/model"
	"natural-event-scheduler/pkg/gcalendar"
	"natural-event-scheduler/pkg/gemini"
	"natural-event-scheduler/pkg/isodate"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                   {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockGenerator struct {
	fn      func(ctx context.Context, req gemini.EventRequest) (*gemini.EventFields, error)
	lastReq gemini.EventRequest
}

func (m *mockGenerator) ExtractEvent(ctx context.Context, req gemini.EventRequest) (*gemini.EventFields, error) {
	m.lastReq = req
	return m.fn(ctx, req)
}

type mockCalendarStore struct {
	mu sync.Mutex

	accessStatus gcalendar.AuthStatus
	accessErr    error
	calendars    []gcalendar.CalendarInfo
	listErr      error
	defaultID    string

	created     *gcalendar.Event
	createErr   error
	createDelay time.Duration
	createReq   gcalendar.CreateEventRequest

	deleteErr        error
	deletedCalendar  string
	deletedEventID   string
	deleteCallCount  int
}

func (m *mockCalendarStore) CheckAccess(ctx context.Context) (gcalendar.AuthStatus, error) {
	return m.accessStatus, m.accessErr
}

func (m *mockCalendarStore) ListCalendars(ctx context.Context) ([]gcalendar.CalendarInfo, error) {
	return m.calendars, m.listErr
}

func (m *mockCalendarStore) DefaultCalendarID(ctx context.Context) (string, error) {
	return m.defaultID, nil
}

func (m *mockCalendarStore) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	m.createReq = req
	m.mu.Unlock()
	if m.createDelay > 0 {
		select {
		case <-time.After(m.createDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}

func (m *mockCalendarStore) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCallCount++
	m.deletedCalendar = calendarID
	m.deletedEventID = eventID
	return m.deleteErr
}

type mockDraftStore struct {
	mu      sync.Mutex
	draft   *model.EventDraft
	saveErr error
	loadErr error
}

func (m *mockDraftStore) SaveDraft(ctx context.Context, draft model.EventDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := draft
	m.draft = &copied
	return nil
}

func (m *mockDraftStore) LoadDraft(ctx context.Context) (*model.EventDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.draft == nil {
		return nil, nil
	}
	copied := *m.draft
	return &copied, nil
}

func (m *mockDraftStore) ClearDraft(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = nil
	return nil
}

func (m *mockDraftStore) stored() *model.EventDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

func testCodec(t *testing.T) *isodate.Codec {
	t.Helper()
	codec, err := isodate.NewCodec("Asia/Tokyo", 0)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	codec.SetClock(func() time.Time {
		return time.Date(2025, 12, 8, 9, 0, 0, 0, time.UTC)
	})
	return codec
}

type fixture struct {
	uc     *implUseCase
	gen    *mockGenerator
	store  *mockCalendarStore
	drafts *mockDraftStore
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	gen := &mockGenerator{
		fn: func(ctx context.Context, req gemini.EventRequest) (*gemini.EventFields, error) {
			return &gemini.EventFields{Title: "Lunch with Alex", Start: "2025-12-09T13:00:00+09:00"}, nil
		},
	}
	store := &mockCalendarStore{accessStatus: gcalendar.AuthGranted, defaultID: "primary"}
	drafts := &mockDraftStore{}
	uc := New(noopLogger{}, gen, store, drafts, testCodec(t), cfg)
	return &fixture{uc: uc, gen: gen, store: store, drafts: drafts}
}

var testScope = model.Scope{UserID: "u-1", Username: "alex"}
