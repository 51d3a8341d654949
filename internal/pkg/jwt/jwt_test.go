//go:build unit

package jwt

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	branchID := uuid.New()
	actor, err := user.NewActor(uuid.New(), user.RoleEmployee, &branchID)
	require.NoError(t, err)

	token, err := svc.GenerateToken(actor)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor.UserID(), claims.UserID)
	assert.Equal(t, "employee", claims.Role)
	require.NotNil(t, claims.BranchID)
	assert.Equal(t, branchID, *claims.BranchID)
}

func TestService_ValidateToken(t *testing.T) {
	actor, err := user.NewActor(uuid.New(), user.RoleAdmin, nil)
	require.NoError(t, err)

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issuedAt := time.Now().Add(-time.Hour)
		svc.now = func() time.Time { return issuedAt }
		token, err := svc.GenerateToken(actor)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(actor)
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
