package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladimirfomene/raggnet/internal/auth"
	apperrors "github.com/vladimirfomene/raggnet/internal/errors"
	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
)

const bcryptCost = 10

// AuthService handles login and logout.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users  repository.UserRepository
	tokens auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens auth.TokenStoreInterface) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Login validates the submitted credential against the stored hash and
// issues a session token on match. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// Logout revokes the bearer token. It succeeds whether or not the token
// existed; prior tokens for the same user stay valid.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil && !errors.Is(err, apperrors.ErrInvalidToken) {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
