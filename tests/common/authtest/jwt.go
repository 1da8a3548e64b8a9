//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider would, using the
// shared secret from the test config.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, duration, jwt.Identity{UserID: userID, Role: role})
}

// GenerateIdentityToken carries profile claims for first-login sync.
func (h *JWTHelper) GenerateIdentityToken(t *testing.T, id jwt.Identity) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, duration, id)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, -time.Minute, jwt.Identity{UserID: userID, Role: role})
}

func (h *JWTHelper) sign(t *testing.T, d time.Duration, id jwt.Identity) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, d).GenerateToken(id)
	require.NoError(t, err)
	return token
}
