package service

import (
	"context"

	"github.com/limbo/basetracker/pkg/entity"
)

type CreateHabitRequest struct {
	Name         string
	Category     entity.Category
	ReminderTime string
}

type CreateTaskRequest struct {
	Title   string
	DueDate string
}

// AdviceI turns the current collections into a short coaching text. It never fails:
// implementations fall back to fixed text.
type AdviceI interface {
	Advise(ctx context.Context, habits []entity.Habit, tasks []entity.Task) string
}
