package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
	"github.com/kasirpos/kasirpos/internal/repository"
	"github.com/kasirpos/kasirpos/internal/service"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
)

func newSessionService() service.SessionService {
	return service.NewSessionService(repository.NewSessionRepository(kv.NewMemory()))
}

func TestSessionService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should log in with the demo credentials", func(t *testing.T) {
		svc := newSessionService()

		session, err := svc.Login(ctx, "admin", "admin123", model.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, session.IsLoggedIn)
		assert.Equal(t, model.RoleAdmin, session.Role)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, session, current)
	})

	t.Run("Should log in the kasir account", func(t *testing.T) {
		svc := newSessionService()

		session, err := svc.Login(ctx, "kasir", "kasir123", model.RoleKasir)
		require.NoError(t, err)
		assert.Equal(t, model.RoleKasir, session.Role)
	})

	t.Run("Should reject wrong credentials", func(t *testing.T) {
		svc := newSessionService()

		_, err := svc.Login(ctx, "admin", "wrong", model.RoleAdmin)
		assert.True(t, errors.Is(err, apperr.InvalidCredentialsErr))
	})

	t.Run("Should reject credentials of the other role", func(t *testing.T) {
		svc := newSessionService()

		_, err := svc.Login(ctx, "admin", "admin123", model.RoleKasir)
		assert.True(t, errors.Is(err, apperr.InvalidCredentialsErr))
	})

	t.Run("Should reject blank credentials", func(t *testing.T) {
		svc := newSessionService()

		_, err := svc.Login(ctx, "", "", model.RoleAdmin)
		assertCode(t, err, apperr.ValidationErrorCode)
	})

	t.Run("Should report no session before login and after logout", func(t *testing.T) {
		svc := newSessionService()

		_, err := svc.Current(ctx)
		assert.True(t, errors.Is(err, apperr.SessionNotFoundErr))

		_, err = svc.Login(ctx, "kasir", "kasir123", model.RoleKasir)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx))

		_, err = svc.Current(ctx)
		assert.True(t, errors.Is(err, apperr.SessionNotFoundErr))
	})
}
