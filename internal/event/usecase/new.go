package usecase

import (
	"sync"
	"time"

	"natural-event-scheduler/internal/event"
	"natural-event-scheduler/internal/event/repository"
	"natural-event-scheduler/pkg/gcalendar"
	"natural-event-scheduler/pkg/isodate"
	pkgLog "natural-event-scheduler/pkg/log"
)

// Config carries the workflow tunables. Zero values select the documented
// defaults.
type Config struct {
	Timezone       string        // IANA identifier; empty means system timezone
	ParseTimeout   time.Duration // default 30s
	SaveTimeout    time.Duration // default 10s
	UndoWindow     time.Duration // default 10s
	MaxInputLength int           // default 500 characters
}

func (c *Config) applyDefaults() {
	if c.ParseTimeout <= 0 {
		c.ParseTimeout = 30 * time.Second
	}
	if c.SaveTimeout <= 0 {
		c.SaveTimeout = 10 * time.Second
	}
	if c.UndoWindow <= 0 {
		c.UndoWindow = 10 * time.Second
	}
	if c.MaxInputLength <= 0 {
		c.MaxInputLength = 500
	}
}

type implUseCase struct {
	l         pkgLog.Logger
	generator event.Generator
	store     event.CalendarStore
	drafts    repository.DraftStore
	codec     *isodate.Codec
	cfg       Config
	timezone  string

	mu              sync.Mutex
	state           event.State
	opSeq           uint64 // bumped on every transition start; late results check it
	canUndo         bool
	undoTimer       *time.Timer
	savedEventID    string
	savedCalendarID string
	calendars       []gcalendar.CalendarInfo
}

// New creates the event workflow UseCase.
func New(
	l pkgLog.Logger,
	generator event.Generator,
	store event.CalendarStore,
	drafts repository.DraftStore,
	codec *isodate.Codec,
	cfg Config,
) *implUseCase {
	cfg.applyDefaults()

	timezone := cfg.Timezone
	if timezone == "" {
		timezone = codec.Location().String()
	}

	return &implUseCase{
		l:         l,
		generator: generator,
		store:     store,
		drafts:    drafts,
		codec:     codec,
		cfg:       cfg,
		timezone:  timezone,
		state:     event.State{Phase: event.PhaseIdle},
	}
}
