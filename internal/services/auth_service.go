package services

import (
	"context"
	"errors"

	"github.com/sewinggem/template-service/internal/auth"
	"github.com/sewinggem/template-service/internal/models"
	"go.uber.org/zap"
)

// AdminUserRepository is the interface that wraps methods for admin user data access
type AdminUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

type authService struct {
	userRepo AdminUserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo AdminUserRepository, tokens *auth.TokenManager, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies the credentials and issues a session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", nil, models.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
