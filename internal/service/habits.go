package service

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/limbo/basetracker/pkg/timeutil"
)

// NewHabit validates the request and builds a fresh habit. Nothing is produced on error.
func NewHabit(req CreateHabitRequest, now time.Time) (*entity.Habit, error) {
	name := req.Name
	if strings.TrimSpace(name) == "" {
		return nil, errorvalues.ErrInvalidHabitName
	}
	if !req.Category.Valid() {
		return nil, errorvalues.ErrInvalidCategory
	}
	reminder, err := normalizeReminder(req.ReminderTime)
	if err != nil {
		return nil, err
	}
	return &entity.Habit{
		ID:             uuid.New(),
		Name:           name,
		Category:       req.Category,
		Frequency:      entity.AllWeekdays(),
		Streak:         0,
		CompletedDates: []string{},
		ReminderTime:   reminder,
		CreatedAt:      now,
		Color:          req.Category.Color(),
	}, nil
}

// ToggleCompletion flips the completion state of h on date.
//
// The streak moves by exactly one step per call (floored at zero) whether or not
// date is adjacent to the previous run, so it counts net toggles rather than a
// verified run of consecutive days. LastCompleted is set to date in both directions,
// including on undo.
func ToggleCompletion(h *entity.Habit, date string) {
	if i := slices.Index(h.CompletedDates, date); i >= 0 {
		dates := slices.Clone(h.CompletedDates)
		h.CompletedDates = slices.Delete(dates, i, i+1)
		h.Streak = max(0, h.Streak-1)
	} else {
		h.CompletedDates = append(slices.Clone(h.CompletedDates), date)
		h.Streak++
	}
	h.LastCompleted = date
}

// SetReminder replaces the reminder time. An empty value clears it.
func SetReminder(h *entity.Habit, reminder string) error {
	normalized, err := normalizeReminder(reminder)
	if err != nil {
		return err
	}
	h.ReminderTime = normalized
	return nil
}

func normalizeReminder(reminder string) (string, error) {
	reminder = strings.TrimSpace(reminder)
	if reminder == "" {
		return "", nil
	}
	if !timeutil.ValidMinuteKey(reminder) {
		return "", errorvalues.ErrInvalidReminderTime
	}
	return reminder, nil
}

// ConsecutiveRun counts the days present in dates going backwards from today.
// A run that ended yesterday still counts, so an unchecked today does not reset it.
func ConsecutiveRun(dates []string, today string) int {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	day := today
	if _, ok := set[day]; !ok {
		prev, err := timeutil.PreviousDateKey(day)
		if err != nil {
			return 0
		}
		day = prev
	}
	run := 0
	for {
		if _, ok := set[day]; !ok {
			return run
		}
		run++
		prev, err := timeutil.PreviousDateKey(day)
		if err != nil {
			return run
		}
		day = prev
	}
}

// LongestRun returns the longest run of consecutive calendar days in dates.
func LongestRun(dates []string) int {
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := timeutil.ParseDateKey(d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	days = slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })
	longest, current := 0, 0
	for i, d := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(d) {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
	}
	return longest
}

// BuildHabitStats reports the stored streak counter alongside runs derived from history.
func BuildHabitStats(h *entity.Habit, today string) *entity.HabitStats {
	last := ""
	for _, d := range h.CompletedDates {
		if d > last {
			last = d
		}
	}
	return &entity.HabitStats{
		ID:            h.ID,
		TotalChecks:   len(h.CompletedDates),
		Streak:        h.Streak,
		CurrentStreak: ConsecutiveRun(h.CompletedDates, today),
		MaxStreak:     LongestRun(h.CompletedDates),
		LastCheck:     last,
	}
}
