package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/internal/identity"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/limbo/basetracker/pkg/httputil"
	"github.com/limbo/basetracker/pkg/timeutil"
)

const (
	requestTimeout = 10 * time.Second
	maxLoginBody   = 1 << 16
)

type LoginRequest = identity.SignInRequest

type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type ProfileResponse struct {
	Greeting string       `json:"greeting"`
	User     *entity.User `json:"user"`
}

type UpdatePhotoRequest struct {
	Photo string `json:"photo" validate:"required,url"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxLoginBody))
	if err != nil {
		logger.Error("login error: reading body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// an empty body signs in with the default account
	if len(bytes.TrimSpace(body)) > 0 {
		if err = sonic.ConfigDefault.Unmarshal(body, &req); err != nil {
			logger.Error("login error: invalid body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.identity.SignIn(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSignInAborted):
			logger.Error("login error: sign-in aborted", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusGatewayTimeout, "sign-in did not complete", nil)
		default:
			logger.Error("login error: invalid sign-in request", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid sign-in request", err)
		}
		return
	}
	warning, err := splitWarning(s.session.SwitchIdentity(ctx, user))
	if err != nil {
		logger.Error("login error: switching identity", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "couldn't load your data", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteData(w, http.StatusOK, LoginResponse{Token: token, User: user}, warning)
	logger.Info("successful login", slog.String("uid", user.ID))
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	warning, err := splitWarning(s.session.SwitchIdentity(ctx, nil))
	if err != nil {
		s.writeServiceError(w, logger, "logout", err)
		return
	}
	writeEmpty(w, warning)
	logger.Info("logged out")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user := s.session.Identity()
	if user == nil {
		s.writeServiceError(w, logger, "get profile", errorvalues.ErrNoActiveIdentity)
		return
	}
	firstName, _, _ := strings.Cut(user.Name, " ")
	httputil.WriteData(w, http.StatusOK, ProfileResponse{
		Greeting: timeutil.Greeting(s.clock()) + ", " + firstName + "!",
		User:     user,
	}, nil)
}

func (s *Server) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdatePhotoRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update photo error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := entity.Validate(&req); err != nil {
		logger.Error("update photo error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "photo must be a URL", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.session.UpdatePhoto(ctx, req.Photo)
	warning, err := splitWarning(err)
	if err != nil {
		s.writeServiceError(w, logger, "update photo", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, user, warning)
	logger.Info("photo updated")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, s.session.Summary(), nil)
}

func (s *Server) GetAdvice(w http.ResponseWriter, r *http.Request) {
	httputil.WriteData(w, http.StatusOK, AdviceResponse{Advice: s.session.Advice()}, nil)
}

func (s *Server) RefreshAdvice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	text, err := s.session.RefreshAdvice(r.Context())
	if err != nil {
		s.writeServiceError(w, logger, "refresh advice", err)
		return
	}
	httputil.WriteData(w, http.StatusOK, AdviceResponse{Advice: text}, nil)
	logger.Info("advice refreshed")
}

// splitWarning separates persistence failures, which are reported alongside
// a successful response, from errors that fail the request.
func splitWarning(err error) (warning error, failure error) {
	if errors.Is(err, errorvalues.ErrPersistFailed) {
		return err, nil
	}
	return nil, err
}

func writeEmpty(w http.ResponseWriter, warning error) {
	if warning != nil {
		httputil.WriteData(w, http.StatusOK, nil, warning)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidHabitName),
		errors.Is(err, errorvalues.ErrInvalidCategory),
		errors.Is(err, errorvalues.ErrInvalidReminderTime),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrInvalidTaskTitle):
		logger.Error(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", err)
	case errors.Is(err, errorvalues.ErrNoActiveIdentity):
		logger.Error(op + " error: nobody signed in")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no active session", nil)
	case errors.Is(err, errorvalues.ErrStaleSession):
		logger.Warn(op+" error: stale session", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "session changed while processing", nil)
	case errors.Is(err, errorvalues.ErrAdviceUnavailable):
		logger.Warn(op + " error: advice unavailable")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "advice unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
