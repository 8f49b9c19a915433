package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktracker/internal/auth"
	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

// AuthService handles registration, login and identity resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	UserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	tokens   *auth.TokenService
	tokenTTL time.Duration
}

// NewAuthService creates a new authentication service. tokenTTL of zero
// falls back to the token service default.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, tokenTTL time.Duration) AuthService {
	return &authService{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user with a hashed password and returns a fresh
// token keyed on the new user's ID.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Login authenticates a user and returns a token. Unknown email and wrong
// password produce the same error to prevent account enumeration.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// UserByID resolves a verified token subject to a user. A subject whose user
// no longer exists is unauthorized.
func (s *authService) UserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
