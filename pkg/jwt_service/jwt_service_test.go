package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/basetracker/internal/api"
	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/entity"
	jwtservice "github.com/limbo/basetracker/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var user = &entity.User{ID: "google-123", Name: "Usuário Demo", Email: "usuario.demo@gmail.com"}

func newService(t *testing.T, secret string) *jwtservice.JWTService {
	t.Helper()
	s, err := jwtservice.New(secret)
	require.NoError(t, err)
	return s
}

func TestGenerateAndParse(t *testing.T) {
	s := newService(t, "secret")
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
}

func TestParseRejects(t *testing.T) {
	s := newService(t, "secret")
	valid, err := s.GenerateToken(user)
	require.NoError(t, err)
	foreign, err := newService(t, "other").GenerateToken(user)
	require.NoError(t, err)
	expired, err := newService(t, "secret").WithTTL(time.Nanosecond).GenerateToken(user)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &api.JWTClaims{UserID: user.ID}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "garbage", Token: "not.a.token"},
		{Desc: "other secret", Token: foreign},
		{Desc: "expired", Token: expired},
		{Desc: "unsigned", Token: none},
		{Desc: "truncated", Token: valid[:len(valid)-4]},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.Error(t, err)
		})
	}
}

func TestGenerateWithoutUser(t *testing.T) {
	_, err := newService(t, "secret").GenerateToken(nil)
	assert.Error(t, err)
}

func TestNewRejectsBlankSecret(t *testing.T) {
	for _, secret := range []string{"", "   ", "\t\n"} {
		s, err := jwtservice.New(secret)
		assert.ErrorIs(t, err, errorvalues.ErrMissingSecret)
		assert.Nil(t, s)
	}
}
