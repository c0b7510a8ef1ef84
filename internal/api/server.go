package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/basetracker/internal/identity"
	"github.com/limbo/basetracker/pkg/timeutil"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx         *chi.Mux
	session    SessionI
	identity   identity.Provider
	jwtService JWTServiceI
	clock      timeutil.Clock
	logger     *slog.Logger
}

type ServicesList struct {
	Session    SessionI
	Identity   identity.Provider
	JwtService JWTServiceI
	Clock      timeutil.Clock
	Logger     *slog.Logger
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:         chi.NewMux(),
		session:    servicesOptions.Session,
		identity:   servicesOptions.Identity,
		jwtService: servicesOptions.JwtService,
		clock:      servicesOptions.Clock,
		logger:     servicesOptions.Logger,
	}
	if s.clock == nil {
		s.clock = timeutil.SystemClock
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, middleware.Recoverer)

	s.mx.Post("/auth/login", s.Login)
	s.mx.With(s.AuthMiddleware, s.LoggerExtensionMiddleware).Post("/auth/logout", s.Logout)

	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/profile", s.GetProfile)
		r.Put("/profile/photo", s.UpdatePhoto)

		r.Get("/habits", s.GetHabits)
		r.Post("/habits", s.CreateHabit)
		r.Delete("/habits/{id}", s.DeleteHabit)
		r.Post("/habits/{id}/toggle", s.ToggleHabit)
		r.Put("/habits/{id}/reminder", s.SetReminder)
		r.Get("/habits/{id}/stats", s.GetHabitStats)

		r.Get("/tasks", s.GetTasks)
		r.Post("/tasks", s.CreateTask)
		r.Post("/tasks/{id}/toggle", s.ToggleTask)
		r.Delete("/tasks/{id}", s.DeleteTask)

		r.Get("/stats", s.GetStats)
		r.Get("/advice", s.GetAdvice)
		r.Post("/advice/refresh", s.RefreshAdvice)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	s.logger.Info("server stopped")
	return nil
}
