package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/basetracker/internal/service"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/limbo/basetracker/pkg/httputil"
)

type CreateHabitRequest struct {
	Name         string          `json:"name"`
	Category     entity.Category `json:"category"`
	ReminderTime string          `json:"reminderTime,omitempty"`
}

type ReminderRequest struct {
	ReminderTime string `json:"reminderTime"`
}

type GetHabitsResponse struct {
	UserID string         `json:"user_id"`
	Habits []entity.Habit `json:"habits"`
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteData(w, http.StatusOK, GetHabitsResponse{
		UserID: uid,
		Habits: s.session.Habits(),
	}, nil)
	logger.Info("habits provided")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateHabitRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("habit creation error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.session.AddHabit(ctx, service.CreateHabitRequest{
		Name:         req.Name,
		Category:     req.Category,
		ReminderTime: req.ReminderTime,
	})
	warning, err := splitWarning(err)
	if err != nil {
		s.writeServiceError(w, logger, "habit creation", err)
		return
	}
	httputil.WriteData(w, http.StatusCreated, habit, warning)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	warning, err := splitWarning(s.session.DeleteHabit(ctx, id))
	if err != nil {
		s.writeServiceError(w, logger, "habit deletion", err)
		return
	}
	writeEmpty(w, warning)
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}

// ToggleHabit flips completion for today, or for the day in the optional
// date query parameter.
func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit toggle error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	var habit *entity.Habit
	if date := r.URL.Query().Get("date"); date != "" {
		habit, err = s.session.ToggleHabitOn(ctx, id, date)
	} else {
		habit, err = s.session.ToggleHabit(ctx, id)
	}
	warning, err := splitWarning(err)
	if err != nil {
		s.writeServiceError(w, logger, "habit toggle", err)
		return
	}
	if habit == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteData(w, http.StatusOK, habit, warning)
	logger.Info("habit toggled", slog.String("habit_id", id.String()), slog.Int("streak", habit.Streak))
}

func (s *Server) SetReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("setting reminder error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req ReminderRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("setting reminder error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.session.SetReminder(ctx, id, req.ReminderTime)
	warning, err := splitWarning(err)
	if err != nil {
		s.writeServiceError(w, logger, "setting reminder", err)
		return
	}
	if habit == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteData(w, http.StatusOK, habit, warning)
	logger.Info("reminder set", slog.String("habit_id", id.String()), slog.String("at", habit.ReminderTime))
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit stats error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	stats, ok := s.session.HabitStats(id)
	if !ok {
		logger.Error("habit stats error: unexist habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		return
	}
	httputil.WriteData(w, http.StatusOK, stats, nil)
}
