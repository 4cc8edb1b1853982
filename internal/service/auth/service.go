package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/auth"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/settings"
	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/jwt"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	userRepo     user.UserRepository
	settingsRepo settings.SettingsRepository
	jwtService   jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	settingsRepo settings.SettingsRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
	}
}

// Login accepts either a username or an email in the username field. A
// failed lookup and a failed password check produce the same error so the
// response does not leak which accounts exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) && validator.IsValidEmail(req.Username) {
			account, err = s.userRepo.GetByEmail(ctx, req.Username)
		}
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.TokenResponse{}, auth.ErrInvalidCredentials
			}
			return auth.TokenResponse{}, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !account.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	return s.issueTokens(account)
}

// Register creates a regular user account. It is gated by the
// allow_self_registration system preference.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	prefs, err := s.settingsRepo.GetPreferences(ctx)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !prefs.AllowSelfRegistration {
		return auth.TokenResponse{}, user.ErrSelfRegistrationOff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	username := req.Username
	if username == "" {
		username = req.Email
	}

	account, err := s.userRepo.Create(ctx, user.User{
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(account)
}

// Refresh rotates a refresh token: the old token is revoked and a fresh
// access/refresh pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}
	if !account.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountDisabled
	}

	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(account)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, req auth.LogoutRequest) error {
	if req.RefreshToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(req.RefreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(account user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
		User:                  user.ToResponse(account),
	}, nil
}
