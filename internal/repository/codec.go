package repository

import (
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/limbo/basetracker/pkg/timeutil"
)

func encodeHabits(habits []entity.Habit) ([]byte, error) {
	if habits == nil {
		habits = []entity.Habit{}
	}
	data, err := sonic.Marshal(habits)
	if err != nil {
		return nil, errors.New("encoding habits error: " + err.Error())
	}
	return data, nil
}

func encodeTasks(tasks []entity.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []entity.Task{}
	}
	data, err := sonic.Marshal(tasks)
	if err != nil {
		return nil, errors.New("encoding tasks error: " + err.Error())
	}
	return data, nil
}

func encodeUser(user *entity.User) ([]byte, error) {
	data, err := sonic.Marshal(user)
	if err != nil {
		return nil, errors.New("encoding user error: " + err.Error())
	}
	return data, nil
}

// decodeHabits parses a stored habit document. Entries that cannot be repaired are
// dropped; a document that is not a JSON array yields ErrMalformedRecord.
func decodeHabits(data []byte) ([]entity.Habit, error) {
	raws, err := splitDocument(data)
	if err != nil {
		return nil, err
	}
	habits := make([]entity.Habit, 0, len(raws))
	for i, raw := range raws {
		var h entity.Habit
		if err := sonic.Unmarshal(raw, &h); err != nil {
			slog.Warn("dropping undecodable habit", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		upgradeHabit(&h)
		if err := entity.Validate(&h); err != nil {
			slog.Warn("dropping invalid habit", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		habits = append(habits, h)
	}
	return habits, nil
}

func decodeTasks(data []byte) ([]entity.Task, error) {
	raws, err := splitDocument(data)
	if err != nil {
		return nil, err
	}
	tasks := make([]entity.Task, 0, len(raws))
	for i, raw := range raws {
		var t entity.Task
		if err := sonic.Unmarshal(raw, &t); err != nil {
			slog.Warn("dropping undecodable task", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		if t.DueDate != "" && !timeutil.ValidDateKey(t.DueDate) {
			t.DueDate = ""
		}
		if err := entity.Validate(&t); err != nil {
			slog.Warn("dropping invalid task", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// decodeUser returns nil for an empty identity record.
func decodeUser(data []byte) (*entity.User, error) {
	var user *entity.User
	if err := sonic.Unmarshal(data, &user); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedRecord, err)
	}
	if user == nil || (user.ID == "" && user.Email == "") {
		return nil, nil
	}
	return user, nil
}

func splitDocument(data []byte) ([]json.RawMessage, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := sonic.Unmarshal(data, &raws); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedRecord, err)
	}
	return raws, nil
}

// upgradeHabit fills fields missing from older documents and repairs values
// that would otherwise break the streak engine.
func upgradeHabit(h *entity.Habit) {
	if !h.Category.Valid() {
		if c, ok := entity.CategoryFromLabel(string(h.Category)); ok {
			h.Category = c
		}
	}
	if h.Color == "" {
		h.Color = h.Category.Color()
	}
	frequency := make([]entity.Weekday, 0, len(h.Frequency))
	for _, d := range h.Frequency {
		day, ok := entity.ParseWeekday(string(d))
		if ok && !slices.Contains(frequency, day) {
			frequency = append(frequency, day)
		}
	}
	if len(frequency) == 0 {
		frequency = entity.AllWeekdays()
	}
	h.Frequency = frequency
	if h.Streak < 0 {
		h.Streak = 0
	}
	dates := make([]string, 0, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		if timeutil.ValidDateKey(d) && !slices.Contains(dates, d) {
			dates = append(dates, d)
		}
	}
	h.CompletedDates = dates
	if h.LastCompleted != "" && !timeutil.ValidDateKey(h.LastCompleted) {
		h.LastCompleted = ""
	}
	if h.ReminderTime != "" && !timeutil.ValidMinuteKey(h.ReminderTime) {
		h.ReminderTime = ""
	}
}
