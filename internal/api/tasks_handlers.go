package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/basetracker/internal/service"
	"github.com/limbo/basetracker/pkg/httputil"
)

type CreateTaskRequest struct {
	Title   string `json:"title"`
	DueDate string `json:"dueDate,omitempty"`
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, s.session.Tasks(), nil)
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTaskRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("task creation error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.session.AddTask(ctx, service.CreateTaskRequest{Title: req.Title, DueDate: req.DueDate})
	warning, err := splitWarning(err)
	if err != nil {
		s.writeServiceError(w, logger, "task creation", err)
		return
	}
	httputil.WriteData(w, http.StatusCreated, task, warning)
	logger.Info("task created", slog.String("task_id", task.ID.String()))
}

func (s *Server) ToggleTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task toggle error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.session.ToggleTask(ctx, id)
	warning, err := splitWarning(err)
	if err != nil {
		s.writeServiceError(w, logger, "task toggle", err)
		return
	}
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteData(w, http.StatusOK, task, warning)
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	warning, err := splitWarning(s.session.DeleteTask(ctx, id))
	if err != nil {
		s.writeServiceError(w, logger, "task deletion", err)
		return
	}
	writeEmpty(w, warning)
}
