package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/entity"
)

const DefaultLatency = 1500 * time.Millisecond

// SignInRequest carries optional overrides for the simulated account.
type SignInRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type Provider interface {
	SignIn(ctx context.Context, req SignInRequest) (*entity.User, error)
}

// SimulatedProvider stands in for an external sign-in flow. It waits, then
// returns the demo account, optionally renamed by the request.
type SimulatedProvider struct {
	latency time.Duration
	base    entity.User
}

func NewSimulatedProvider(latency time.Duration) *SimulatedProvider {
	if latency < 0 {
		latency = 0
	}
	return &SimulatedProvider{
		latency: latency,
		base: entity.User{
			ID:    "google-123",
			Name:  "Usuário Base",
			Email: "contato@dicasdabase.com",
			Photo: "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
		},
	}
}

func (sp *SimulatedProvider) SignIn(ctx context.Context, req SignInRequest) (*entity.User, error) {
	if err := entity.Validate(&req); err != nil {
		return nil, err
	}
	timer := time.NewTimer(sp.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, errors.Join(errorvalues.ErrSignInAborted, ctx.Err())
	case <-timer.C:
	}
	user := sp.base
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = strings.ToLower(email)
		user.ID = "google-" + user.Email
	}
	return &user, nil
}
