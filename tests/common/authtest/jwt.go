//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hydro-command/internal/domain/user"
	"hydro-command/internal/pkg/config"
	"hydro-command/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

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
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role.String()+"-user", role)
	require.NoError(t, err)
	return token
}

// Token returns a token for a fresh user with role.
func (h *JWTHelper) Token(t *testing.T, role user.Role) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, "expired", role)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
