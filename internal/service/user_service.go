package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/vladimirfomene/raggnet/internal/errors"
	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
)

// UserUpdate carries the fields of a field-level merge update. Nil fields
// are left untouched.
type UserUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// UserService exposes account operations.
type UserService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*model.User, error)
	CreateAdmin(ctx context.Context, name, email, phone, password string) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService on the user repository.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Signup creates a regular user account with a hashed password.
func (s *userService) Signup(ctx context.Context, name, email, phone, password string) (*model.User, error) {
	return s.create(ctx, name, email, phone, password, model.RoleUser)
}

// CreateAdmin creates an admin account. Only the super-admin route may
// reach this; role elevation happens nowhere else.
func (s *userService) CreateAdmin(ctx context.Context, name, email, phone, password string) (*model.User, error) {
	return s.create(ctx, name, email, phone, password, model.RoleAdmin)
}

func (s *userService) create(ctx context.Context, name, email, phone, password string, role model.Role) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Update merges the provided fields into the stored user.
func (s *userService) Update(ctx context.Context, id string, upd UserUpdate) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != user.Email {
		existing, err := s.users.FindByEmail(ctx, *upd.Email)
		if err == nil && existing != nil {
			return nil, apperrors.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		user.Email = *upd.Email
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete hard-deletes the user. Deleting an absent user reports not found.
func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
