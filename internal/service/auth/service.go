package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsh-hris/roster-backend-go/internal/domain/auth"
	"github.com/gsh-hris/roster-backend-go/internal/domain/user"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userID, err := a.Service.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// Rotate: the presented refresh token is single use.
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResponse, error) {
	var resp auth.LoginResponse
	var err error

	resp.AccessToken, resp.ExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	resp.UserID = userData.ID
	resp.Role = string(userData.Role)
	resp.EmployeeID = userData.EmployeeID
	return resp, nil
}
