package jwtservice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/basetracker/internal/api"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/entity"
)

var (
	tokenTTL = 12 * time.Hour
)

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// New refuses a blank secret: tokens signed with it could be forged by anyone.
func New(secret string) (*JWTService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errorvalues.ErrMissingSecret
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    tokenTTL,
	}, nil
}

// WithTTL overrides how long issued tokens stay valid.
func (s *JWTService) WithTTL(ttl time.Duration) *JWTService {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errorvalues.ErrNoActiveIdentity
	}
	now := time.Now()
	claims := &api.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.New("token parsing error: " + err.Error())
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
