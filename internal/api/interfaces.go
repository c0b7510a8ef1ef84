package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/basetracker/internal/service"
	"github.com/limbo/basetracker/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// SessionI is the part of service.Session the handlers use.
type SessionI interface {
	SwitchIdentity(ctx context.Context, user *entity.User) error
	Identity() *entity.User
	UpdatePhoto(ctx context.Context, photo string) (*entity.User, error)

	Habits() []entity.Habit
	AddHabit(ctx context.Context, req service.CreateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, id uuid.UUID) error
	ToggleHabit(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	ToggleHabitOn(ctx context.Context, id uuid.UUID, date string) (*entity.Habit, error)
	SetReminder(ctx context.Context, id uuid.UUID, reminderTime string) (*entity.Habit, error)
	HabitStats(id uuid.UUID) (*entity.HabitStats, bool)

	Tasks() []entity.Task
	AddTask(ctx context.Context, req service.CreateTaskRequest) (*entity.Task, error)
	ToggleTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	Summary() entity.Summary
	Advice() string
	RefreshAdvice(ctx context.Context) (string, error)
}
