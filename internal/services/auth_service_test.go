package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sewinggem/template-service/internal/auth"
	"github.com/sewinggem/template-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAdminUserRepository struct {
	getByUsernameFunc func(ctx context.Context, username string) (*models.AdminUser, error)
}

func (m *mockAdminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	return m.getByUsernameFunc(ctx, username)
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	repo := &mockAdminUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*models.AdminUser, error) {
			if username != "gemma" {
				return nil, models.ErrUserNotFound
			}
			return &models.AdminUser{ID: 1, Username: "gemma", PasswordHash: passwordHash}, nil
		},
	}

	service := NewAuthService(repo, tokens, zap.NewNop())

	t.Run("success", func(t *testing.T) {
		token, user, err := service.Login(context.Background(), &models.LoginRequest{
			Username: "gemma",
			Password: "correct-password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "gemma", user.Username)

		identity, ok := tokens.Verify(token)
		require.True(t, ok)
		assert.Equal(t, 1, identity.UserID)
		assert.Equal(t, "gemma", identity.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), &models.LoginRequest{
			Username: "gemma",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown username indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), &models.LoginRequest{
			Username: "nobody",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		failing := &mockAdminUserRepository{
			getByUsernameFunc: func(ctx context.Context, username string) (*models.AdminUser, error) {
				return nil, errors.New("database error")
			},
		}

		_, _, err := NewAuthService(failing, tokens, zap.NewNop()).Login(context.Background(), &models.LoginRequest{
			Username: "gemma",
			Password: "correct-password",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
	})
}
