package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/limbo/basetracker/pkg/entity"
	"github.com/limbo/basetracker/pkg/timeutil"
	"github.com/robfig/cron/v3"
)

const DefaultInterval = 60 * time.Second

// Source returns the habits to scan. It is called once per tick.
type Source func() []entity.Habit

type Config struct {
	Interval time.Duration
	Clock    timeutil.Clock
	Logger   *slog.Logger
}

// Scanner checks habit reminder times on a fixed schedule. A stopped scanner
// never signals again; create a new one for the next collection.
type Scanner struct {
	mu       sync.Mutex
	cron     *cron.Cron
	source   Source
	notifier Notifier
	clock    timeutil.Clock
	logger   *slog.Logger
	interval time.Duration
	started  bool
	stopped  bool
}

func NewScanner(source Source, notifier Notifier, cfg Config) *Scanner {
	if cfg.Interval < time.Second {
		cfg.Interval = DefaultInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.SystemClock
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Scanner{
		cron:     cron.New(),
		source:   source,
		notifier: notifier,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		interval: cfg.Interval,
	}
}

// Tick signals every habit whose reminder equals the minute of now and
// returns how many signals were raised.
func (s *Scanner) Tick(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return 0
	}
	minute := timeutil.MinuteKey(now)
	raised := 0
	for _, h := range s.source() {
		if h.ReminderTime == "" || h.ReminderTime != minute {
			continue
		}
		r := Reminder{HabitID: h.ID, HabitName: h.Name, At: minute}
		if err := s.notifier.Notify(context.Background(), r); err != nil {
			s.logger.Warn("reminder notify failed",
				slog.String("habit_id", h.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		raised++
	}
	return raised
}

func (s *Scanner) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return errors.New("reminder scanner already stopped")
	}
	if s.started {
		return nil
	}
	schedule := fmt.Sprintf("@every %ds", int(s.interval.Seconds()))
	if _, err := s.cron.AddFunc(schedule, func() { s.Tick(s.clock()) }); err != nil {
		return errors.New("scheduling reminder scan error: " + err.Error())
	}
	s.cron.Start()
	s.started = true
	s.logger.Debug("reminder scanner started", slog.String("schedule", schedule))
	return nil
}

// Stop cancels the schedule and waits for a running tick to finish.
func (s *Scanner) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()
	<-s.cron.Stop().Done()
	s.logger.Debug("reminder scanner stopped")
}
