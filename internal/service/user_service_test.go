package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/vladimirfomene/raggnet/internal/errors"
	"github.com/vladimirfomene/raggnet/internal/model"
)

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(users *MockUserRepository)
		expectedError error
		expectedRole  model.Role
	}{
		{
			name:  "successful signup gets the user role",
			email: "new@example.com",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:  "email already in use",
			email: "taken@example.com",
			setupMock: func(users *MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tt.setupMock(users)

			svc := NewUserService(users)
			user, err := svc.Signup(context.Background(), "New User", tt.email, "6505550123", "password123")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			}

			users.AssertExpectations(t)
		})
	}
}

func TestUserService_CreateAdmin(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(users)
	admin, err := svc.CreateAdmin(context.Background(), "Admin", "admin@example.com", "6505550123", "password123")

	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	users.AssertExpectations(t)
}

func TestUserService_Update(t *testing.T) {
	userID := "507f1f77bcf86cd799439011"

	t.Run("merges only provided fields", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Name:  "Old Name",
			Email: "old@example.com",
			Phone: "6505550123",
		}, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		newName := "New Name"
		svc := NewUserService(users)
		user, err := svc.Update(context.Background(), userID, UserUpdate{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "old@example.com", user.Email)
		assert.Equal(t, "6505550123", user.Phone)
		users.AssertExpectations(t)
	})

	t.Run("changing email to a taken address conflicts", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "old@example.com",
		}, nil)
		users.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{
			ID:    "aaaaaaaaaaaaaaaaaaaaaaaa",
			Email: "taken@example.com",
		}, nil)

		newEmail := "taken@example.com"
		svc := NewUserService(users)
		_, err := svc.Update(context.Background(), userID, UserUpdate{Email: &newEmail})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("changing email to a free address saves", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "old@example.com",
		}, nil)
		users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		newEmail := "new@example.com"
		svc := NewUserService(users)
		user, err := svc.Update(context.Background(), userID, UserUpdate{Email: &newEmail})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		users.AssertExpectations(t)
	})

	t.Run("keeping the same email skips the uniqueness check", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "old@example.com",
		}, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		sameEmail := "old@example.com"
		svc := NewUserService(users)
		_, err := svc.Update(context.Background(), userID, UserUpdate{Email: &sameEmail})

		assert.NoError(t, err)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("absent user reports not found", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(users)
		_, err := svc.Update(context.Background(), userID, UserUpdate{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	userID := "507f1f77bcf86cd799439011"

	t.Run("deletes an existing user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		users.On("Delete", mock.Anything, userID).Return(nil)

		svc := NewUserService(users)
		assert.NoError(t, svc.Delete(context.Background(), userID))
		users.AssertExpectations(t)
	})

	t.Run("absent user reports not found", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(users)
		assert.ErrorIs(t, svc.Delete(context.Background(), userID), apperrors.ErrUserNotFound)
	})
}
