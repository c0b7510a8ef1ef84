package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/internal/reminder"
	"github.com/limbo/basetracker/internal/repository"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/limbo/basetracker/pkg/timeutil"
)

const (
	InitialAdvice  = "Construindo sua base..."
	NoHabitsAdvice = "Comece sua jornada adicionando seu primeiro hábito! Sua base sólida começa agora."
)

type SessionConfig struct {
	Store    repository.SnapshotStore
	Advisor  AdviceI
	Notifier reminder.Notifier
	Clock    timeutil.Clock
	Logger   *slog.Logger
	// ReminderInterval is the scan period of the reminder scanner.
	ReminderInterval time.Duration
	// AutoAdvice refreshes advice in the background whenever the number of habits changes.
	AutoAdvice bool
}

// Session owns the signed-in identity and its habit and task collections.
// Every mutation and its write-through happen under one lock.
type Session struct {
	mu sync.Mutex

	store      repository.SnapshotStore
	advisor    AdviceI
	notifier   reminder.Notifier
	clock      timeutil.Clock
	logger     *slog.Logger
	interval   time.Duration
	autoAdvice bool

	user    *entity.User
	habits  []entity.Habit
	tasks   []entity.Task
	advice  string
	scanner *reminder.Scanner

	// scanned is read by the reminder scanner without taking mu
	scanned atomic.Pointer[[]entity.Habit]

	// closed stops new background work once Close has started waiting
	closed bool

	epoch        uint64
	adviceSeq    uint64
	adviceCancel context.CancelFunc
	background   sync.WaitGroup
}

func NewSession(cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = timeutil.SystemClock
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = reminder.NewLogNotifier(cfg.Logger)
	}
	s := &Session{
		store:      cfg.Store,
		advisor:    cfg.Advisor,
		notifier:   cfg.Notifier,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		interval:   cfg.ReminderInterval,
		autoAdvice: cfg.AutoAdvice,
		advice:     InitialAdvice,
	}
	s.publishLocked()
	return s
}

// Restore resumes the identity saved by the previous run, if any.
func (s *Session) Restore(ctx context.Context) error {
	user, err := s.store.LoadCurrentUser(ctx)
	if err != nil {
		return errors.New("restoring session error: " + err.Error())
	}
	if user == nil {
		return nil
	}
	return s.SwitchIdentity(ctx, user)
}

// SwitchIdentity replaces the active identity. A nil user signs out: the
// in-memory collections are cleared but nothing stored for the user is deleted.
func (s *Session) SwitchIdentity(ctx context.Context, user *entity.User) error {
	var (
		habits []entity.Habit
		tasks  []entity.Task
		err    error
	)
	if user != nil {
		key := user.StorageKey()
		if habits, err = s.store.LoadHabits(ctx, key); err != nil {
			return errors.New("loading habits error: " + err.Error())
		}
		if tasks, err = s.store.LoadTasks(ctx, key); err != nil {
			return errors.New("loading tasks error: " + err.Error())
		}
	}

	// the old scanner is stopped after mu is released, so a slow notifier
	// never holds up the session
	var previous *reminder.Scanner
	defer func() {
		if previous != nil {
			previous.Stop()
		}
	}()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errorvalues.ErrSessionClosed
	}
	previous, s.scanner = s.scanner, nil
	s.epoch++
	s.cancelAdviceLocked()
	s.advice = InitialAdvice

	if user == nil {
		s.user, s.habits, s.tasks = nil, nil, nil
		s.publishLocked()
		if err = s.store.ClearCurrentUser(ctx); err != nil {
			return s.persistWarning(err)
		}
		return nil
	}

	u := *user
	s.user = &u
	s.habits = nonNil(habits)
	s.tasks = nonNilTasks(tasks)
	s.publishLocked()
	s.scheduleAdviceLocked()

	s.scanner = reminder.NewScanner(s.scannedHabits, s.notifier, reminder.Config{
		Interval: s.interval,
		Clock:    s.clock,
		Logger:   s.logger,
	})
	if err = s.scanner.Start(); err != nil {
		s.logger.Error("starting reminder scanner", slog.String("error", err.Error()))
	}
	s.logger.Info("identity switched",
		slog.String("key", u.StorageKey()),
		slog.Int("habits", len(s.habits)),
		slog.Int("tasks", len(s.tasks)),
	)
	if err = s.store.SaveCurrentUser(ctx, &u); err != nil {
		return s.persistWarning(err)
	}
	return nil
}

func (s *Session) AddHabit(ctx context.Context, req CreateHabitRequest) (*entity.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errorvalues.ErrNoActiveIdentity
	}
	h, err := NewHabit(req, s.clock())
	if err != nil {
		return nil, err
	}
	s.habits = append(s.habits, *h)
	s.publishLocked()
	s.scheduleAdviceLocked()
	created := h.Clone()
	return &created, s.persistLocked(ctx)
}

// DeleteHabit removes the habit with id. Unknown ids are ignored.
func (s *Session) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return errorvalues.ErrNoActiveIdentity
	}
	i := s.habitIndexLocked(id)
	if i < 0 {
		return nil
	}
	s.habits = slices.Delete(s.habits, i, i+1)
	s.publishLocked()
	s.scheduleAdviceLocked()
	return s.persistLocked(ctx)
}

// ToggleHabit toggles completion for the current local day.
func (s *Session) ToggleHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	return s.ToggleHabitOn(ctx, id, timeutil.DateKey(s.clock()))
}

// ToggleHabitOn toggles completion for date. It returns nil for an unknown id.
func (s *Session) ToggleHabitOn(ctx context.Context, id uuid.UUID, date string) (*entity.Habit, error) {
	if !timeutil.ValidDateKey(date) {
		return nil, errorvalues.ErrInvalidDate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errorvalues.ErrNoActiveIdentity
	}
	i := s.habitIndexLocked(id)
	if i < 0 {
		return nil, nil
	}
	ToggleCompletion(&s.habits[i], date)
	s.publishLocked()
	toggled := s.habits[i].Clone()
	return &toggled, s.persistLocked(ctx)
}

func (s *Session) SetReminder(ctx context.Context, id uuid.UUID, reminderTime string) (*entity.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errorvalues.ErrNoActiveIdentity
	}
	i := s.habitIndexLocked(id)
	if i < 0 {
		return nil, nil
	}
	if err := SetReminder(&s.habits[i], reminderTime); err != nil {
		return nil, err
	}
	s.publishLocked()
	updated := s.habits[i].Clone()
	return &updated, s.persistLocked(ctx)
}

func (s *Session) AddTask(ctx context.Context, req CreateTaskRequest) (*entity.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errorvalues.ErrInvalidTaskTitle
	}
	if req.DueDate != "" && !timeutil.ValidDateKey(req.DueDate) {
		return nil, errorvalues.ErrInvalidDate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errorvalues.ErrNoActiveIdentity
	}
	t := entity.Task{
		ID:      uuid.New(),
		Title:   title,
		DueDate: req.DueDate,
	}
	s.tasks = append(s.tasks, t)
	return &t, s.persistLocked(ctx)
}

func (s *Session) ToggleTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errorvalues.ErrNoActiveIdentity
	}
	i := s.taskIndexLocked(id)
	if i < 0 {
		return nil, nil
	}
	s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
	t := s.tasks[i]
	return &t, s.persistLocked(ctx)
}

func (s *Session) DeleteTask(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return errorvalues.ErrNoActiveIdentity
	}
	i := s.taskIndexLocked(id)
	if i < 0 {
		return nil
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return s.persistLocked(ctx)
}

// UpdatePhoto replaces the profile photo of the active identity.
func (s *Session) UpdatePhoto(ctx context.Context, photo string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, errorvalues.ErrNoActiveIdentity
	}
	s.user.Photo = strings.TrimSpace(photo)
	u := *s.user
	if err := s.store.SaveCurrentUser(ctx, &u); err != nil {
		return &u, s.persistWarning(err)
	}
	return &u, nil
}

func (s *Session) Identity() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Habits() []entity.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneHabits(s.habits)
}

func (s *Session) Tasks() []entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(nonNilTasks(s.tasks))
}

func (s *Session) Habit(id uuid.UUID) (*entity.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.habitIndexLocked(id)
	if i < 0 {
		return nil, false
	}
	h := s.habits[i].Clone()
	return &h, true
}

func (s *Session) Advice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advice
}

func (s *Session) Summary() entity.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.habits)
}

func (s *Session) HabitStats(id uuid.UUID) (*entity.HabitStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.habitIndexLocked(id)
	if i < 0 {
		return nil, false
	}
	return BuildHabitStats(&s.habits[i], timeutil.DateKey(s.clock())), true
}

// RefreshAdvice asks the advisor for new text. The advisor runs without the
// session lock; its answer is dropped with ErrStaleSession when the identity
// changed or a newer refresh started meanwhile.
func (s *Session) RefreshAdvice(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return "", errorvalues.ErrNoActiveIdentity
	}
	if len(s.habits) == 0 {
		s.advice = NoHabitsAdvice
		s.mu.Unlock()
		return NoHabitsAdvice, nil
	}
	if s.advisor == nil {
		s.mu.Unlock()
		return "", errorvalues.ErrAdviceUnavailable
	}
	s.cancelAdviceLocked()
	s.adviceSeq++
	epoch, seq := s.epoch, s.adviceSeq
	adviceCtx, cancel := context.WithCancel(ctx)
	s.adviceCancel = cancel
	habits := cloneHabits(s.habits)
	tasks := slices.Clone(s.tasks)
	s.mu.Unlock()
	defer cancel()

	text := s.advisor.Advise(adviceCtx, habits, tasks)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch || s.adviceSeq != seq {
		return "", errorvalues.ErrStaleSession
	}
	s.advice = text
	s.adviceCancel = nil
	return text, nil
}

// Close stops the reminder scanner and waits for background advice to end.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	scanner := s.scanner
	s.scanner = nil
	s.epoch++
	s.cancelAdviceLocked()
	s.mu.Unlock()
	if scanner != nil {
		scanner.Stop()
	}
	s.background.Wait()
}

func (s *Session) scannedHabits() []entity.Habit {
	return *s.scanned.Load()
}

func (s *Session) publishLocked() {
	snapshot := cloneHabits(s.habits)
	s.scanned.Store(&snapshot)
}

func (s *Session) cancelAdviceLocked() {
	if s.adviceCancel != nil {
		s.adviceCancel()
		s.adviceCancel = nil
	}
}

func (s *Session) scheduleAdviceLocked() {
	if len(s.habits) == 0 {
		s.advice = NoHabitsAdvice
		return
	}
	if !s.autoAdvice || s.advisor == nil || s.closed {
		return
	}
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		_, err := s.RefreshAdvice(context.Background())
		if err != nil && !errors.Is(err, errorvalues.ErrStaleSession) {
			s.logger.Debug("background advice refresh", slog.String("error", err.Error()))
		}
	}()
}

func (s *Session) persistLocked(ctx context.Context) error {
	key := s.user.StorageKey()
	err := s.store.SaveSnapshot(ctx, key, cloneHabits(s.habits), slices.Clone(nonNilTasks(s.tasks)))
	if err != nil {
		return s.persistWarning(err)
	}
	return nil
}

func (s *Session) persistWarning(err error) error {
	s.logger.Warn("persisting session state failed, keeping in-memory state",
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%w: %w", errorvalues.ErrPersistFailed, err)
}

func (s *Session) habitIndexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.habits, func(h entity.Habit) bool { return h.ID == id })
}

func (s *Session) taskIndexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.tasks, func(t entity.Task) bool { return t.ID == id })
}

func cloneHabits(habits []entity.Habit) []entity.Habit {
	out := make([]entity.Habit, len(habits))
	for i := range habits {
		out[i] = habits[i].Clone()
	}
	return out
}

func nonNil(habits []entity.Habit) []entity.Habit {
	if habits == nil {
		return []entity.Habit{}
	}
	return habits
}

func nonNilTasks(tasks []entity.Task) []entity.Task {
	if tasks == nil {
		return []entity.Task{}
	}
	return tasks
}
