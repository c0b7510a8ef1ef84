package reminder_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/basetracker/internal/reminder"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	signals []reminder.Reminder
}

func (r *recorder) Notify(_ context.Context, rem reminder.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = append(r.signals, rem)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.signals)
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 1, hour, minute, 0, 0, time.Local)
}

func TestTick(t *testing.T) {
	reading := entity.Habit{ID: uuid.New(), Name: "Ler 20 páginas", ReminderTime: "07:30"}
	running := entity.Habit{ID: uuid.New(), Name: "Correr", ReminderTime: "07:30"}
	silent := entity.Habit{ID: uuid.New(), Name: "Meditar"}

	testCases := []struct {
		Desc     string
		Habits   []entity.Habit
		Now      time.Time
		Expected []string
	}{
		{
			Desc:     "matching minute",
			Habits:   []entity.Habit{reading, silent},
			Now:      at(7, 30),
			Expected: []string{"Ler 20 páginas"},
		},
		{
			Desc:   "next minute",
			Habits: []entity.Habit{reading, silent},
			Now:    at(7, 31),
		},
		{
			Desc:     "every matching habit signals",
			Habits:   []entity.Habit{reading, running, silent},
			Now:      at(7, 30).Add(42 * time.Second),
			Expected: []string{"Ler 20 páginas", "Correr"},
		},
		{
			Desc: "no habits",
			Now:  at(7, 30),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rec := &recorder{}
			scanner := reminder.NewScanner(func() []entity.Habit { return tc.Habits }, rec, reminder.Config{})
			raised := scanner.Tick(tc.Now)
			assert.Equal(t, len(tc.Expected), raised)
			names := make([]string, 0, len(rec.signals))
			for _, s := range rec.signals {
				names = append(names, s.HabitName)
				assert.Equal(t, "07:30", s.At)
			}
			assert.ElementsMatch(t, tc.Expected, names)
		})
	}
}

func TestTickSkipsFailedNotify(t *testing.T) {
	habits := []entity.Habit{
		{ID: uuid.New(), Name: "a", ReminderTime: "21:00"},
		{ID: uuid.New(), Name: "b", ReminderTime: "21:00"},
	}
	calls := 0
	notifier := reminder.NotifierFunc(func(_ context.Context, r reminder.Reminder) error {
		calls++
		if r.HabitName == "a" {
			return errors.New("delivery failed")
		}
		return nil
	})
	scanner := reminder.NewScanner(func() []entity.Habit { return habits }, notifier, reminder.Config{})
	assert.Equal(t, 1, scanner.Tick(at(21, 0)))
	assert.Equal(t, 2, calls)
}

func TestNoSignalAfterStop(t *testing.T) {
	rec := &recorder{}
	habits := []entity.Habit{{ID: uuid.New(), Name: "Beber água", ReminderTime: "07:30"}}
	scanner := reminder.NewScanner(func() []entity.Habit { return habits }, rec, reminder.Config{})
	assert.Equal(t, 1, scanner.Tick(at(7, 30)))
	scanner.Stop()
	assert.Equal(t, 0, scanner.Tick(at(7, 30)))
	assert.Equal(t, 1, rec.count())
	assert.Error(t, scanner.Start())
	// stopping twice is harmless
	scanner.Stop()
}

func TestScheduledTicks(t *testing.T) {
	if testing.Short() {
		t.Skip("waits on the scheduler")
	}
	rec := &recorder{}
	habits := []entity.Habit{{ID: uuid.New(), Name: "Alongar", ReminderTime: "07:30"}}
	scanner := reminder.NewScanner(func() []entity.Habit { return habits }, rec, reminder.Config{
		Interval: time.Second,
		Clock:    func() time.Time { return at(7, 30) },
	})
	require.NoError(t, scanner.Start())
	assert.Eventually(t, func() bool { return rec.count() > 0 }, 5*time.Second, 50*time.Millisecond)
	scanner.Stop()
	after := rec.count()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, after, rec.count())
}
