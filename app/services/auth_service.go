package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// AuthService implements signup, login and session-identity lookup.
type AuthService struct {
	log    *slog.Logger
	users  repositories.UserStorage
	tokens *auth.TokenService
}

func NewAuthService(log *slog.Logger, users repositories.UserStorage, tokens *auth.TokenService) *AuthService {
	return &AuthService{log: log, users: users, tokens: tokens}
}

// Signup registers a new user and returns a freshly issued token. The
// unique index on email turns a duplicate signup into
// repositories.ErrDuplicateEmail.
func (s *AuthService) Signup(ctx context.Context, name, email, password, phone string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("signup: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Phone:    phone,
	})
	if err != nil {
		return "", err
	}

	logger.WithCtx(ctx).Info("user registered", "user_id", user.ID.Hex(), "email", email)
	return s.tokens.GenerateToken(user.ID.Hex())
}

// Login checks the password against the stored hash and returns a fresh
// token. An unknown email surfaces as repositories.ErrNotFound; a wrong
// password as ErrInvalidCredentials. There is no lockout on repeated
// failures.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	logger.WithCtx(ctx).Info("user logged in", "user_id", user.ID.Hex())
	return s.tokens.GenerateToken(user.ID.Hex())
}

// Profile returns the client-visible identity for a verified user id.
func (s *AuthService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	return user.Profile(), nil
}
