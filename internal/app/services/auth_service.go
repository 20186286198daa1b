package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/session"
)

// UserStore is the user access the auth service needs
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// AuthService handles login, logout and revocation checks
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type authServiceImpl struct {
	users       UserStore
	jwtService  *auth.JWTService
	revocations session.RevocationStore
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwtService *auth.JWTService, revocations session.RevocationStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:       users,
		jwtService:  jwtService,
		revocations: revocations,
		now:         time.Now,
		logger:      logger,
	}
}

// Login checks credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive || !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	issued, err := s.jwtService.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.RoleType)).Msg("User logged in")
	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: issued.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   int64(issued.ExpiresIn),
		},
		User: dto.NewUserData(user),
	}, nil
}

// Logout revokes the token for the rest of its lifetime
func (s *authServiceImpl) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.TokenID() == "" {
		return apperrors.ErrTokenInvalid
	}
	if err := s.revocations.Revoke(ctx, claims.TokenID(), claims.TTL(s.now())); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.logger.Info().Int64("userID", claims.UserID).Msg("User logged out")
	return nil
}

func (s *authServiceImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.revocations.IsRevoked(ctx, tokenID)
}
