package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/auth"
	"github.com/yigit/unidash/internal/pkg/latency"
)

// LoginResult is returned by a successful sign-in
type LoginResult struct {
	User      models.Account `json:"user"`
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	sim        *latency.Simulator
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	jwtService *auth.JWTService,
	sim *latency.Simulator,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		sim:        sim,
		logger:     logger,
	}
}

// Login authenticates by exact email match and returns a signed token. Unknown
// emails and wrong passwords fail with the same error.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	account, found := s.userRepo.FindByEmail(email)
	if !found {
		s.logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}

	user := account.Base()
	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Debug().Str("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &LoginResult{
		User:      account,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
