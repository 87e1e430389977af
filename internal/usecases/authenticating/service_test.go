package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

func newTestAuth(t *testing.T, secret string) *Service {
	t.Helper()

	service, err := NewService(&config.Config{Auth: config.Auth{Secret: secret}})
	require.NoError(t, err)

	return service
}

func TestService_TokenRoundtrip(t *testing.T) {
	service := newTestAuth(t, "segredo-de-teste")

	claims := &domain.Claims{
		UserID:   "user-9",
		UserName: "Ana",
		TenantID: "tenant-1",
		RoleID:   domain.RoleOperator,
	}

	token, err := service.GenerateToken(claims, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-9", parsed.UserID)
	assert.Equal(t, "tenant-1", parsed.TenantID)
	assert.False(t, parsed.IsAdmin())
}

func TestService_ValidateToken_Errors(t *testing.T) {
	service := newTestAuth(t, "segredo-de-teste")

	t.Run("token expirado", func(t *testing.T) {
		token, err := service.GenerateToken(&domain.Claims{UserID: "user-9"}, -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("segredo errado", func(t *testing.T) {
		other := newTestAuth(t, "outro-segredo")

		token, err := other.GenerateToken(&domain.Claims{UserID: "user-9"}, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := service.ValidateToken("nem.um.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewService_MissingSecret(t *testing.T) {
	_, err := NewService(&config.Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}
