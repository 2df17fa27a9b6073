package jwtservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	s := New("secret")
	user := &entity.User{ID: uuid.New(), Name: "traveler"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "traveler", claims.Username)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseTokenRejects(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "traveler"}
	issuedAt := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("expired", func(t *testing.T) {
		s := NewWithTTL("secret", time.Hour)
		s.now = func() time.Time { return issuedAt }
		token, err := s.GenerateToken(user)
		require.NoError(t, err)
		s.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("other secret", func(t *testing.T) {
		token, err := New("secret").GenerateToken(user)
		require.NoError(t, err)
		_, err = New("another").ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("other signing method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{Issuer: issuer}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = New("secret").ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := New("secret").ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
