package reminder

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Reminder is raised once per habit whose reminder time matches the scanned minute.
type Reminder struct {
	HabitID   uuid.UUID
	HabitName string
	At        string
}

type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type NotifierFunc func(ctx context.Context, r Reminder) error

func (f NotifierFunc) Notify(ctx context.Context, r Reminder) error {
	return f(ctx, r)
}

// LogNotifier writes each reminder as a log line.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (ln *LogNotifier) Notify(ctx context.Context, r Reminder) error {
	ln.logger.InfoContext(ctx, "Lembrete: hora de "+r.HabitName,
		slog.String("habit_id", r.HabitID.String()),
		slog.String("at", r.At),
	)
	return nil
}
