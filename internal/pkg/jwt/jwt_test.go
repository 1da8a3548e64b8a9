//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Identify(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("round trip keeps identity", func(t *testing.T) {
		want := jwt.Identity{UserID: uuid.New(), Role: user.RoleManager, Email: "m@example.com", Name: "Mia"}
		tok, err := svc.GenerateToken(want)
		require.NoError(t, err)

		got, err := svc.Identify(tok)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing role defaults to guest", func(t *testing.T) {
		claims := jwt.Claims{
			UserID:           uuid.New(),
			RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute))},
		}
		tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		got, err := svc.Identify(tok)
		require.NoError(t, err)
		assert.Equal(t, user.RoleGuest, got.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		claims := jwt.Claims{UserID: uuid.New(), Role: "owner"}
		tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.Identify(tok)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := jwt.NewService("other", time.Hour).GenerateToken(jwt.Identity{UserID: uuid.New(), Role: user.RoleClient})
		require.NoError(t, err)

		_, err = svc.Identify(tok)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := jwt.NewService("secret", -time.Minute).GenerateToken(jwt.Identity{UserID: uuid.New(), Role: user.RoleClient})
		require.NoError(t, err)

		_, err = svc.Identify(tok)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
