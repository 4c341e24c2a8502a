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

func TestAuthService_Login(t *testing.T) {
	userID := "507f1f77bcf86cd799439011"
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(users *MockUserRepository, tokens *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login issues a token",
			email:    "alice@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
					ID:           userID,
					Email:        "alice@example.com",
					PasswordHash: string(hash),
				}, nil)
				tokens.On("Issue", mock.Anything, userID).Return("issued-token", nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password issues nothing",
			email:    "alice@example.com",
			password: "wrong-password",
			setupMock: func(users *MockUserRepository, tokens *MockTokenStore) {
				users.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
					ID:           userID,
					Email:        "alice@example.com",
					PasswordHash: string(hash),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tokens := new(MockTokenStore)
			tt.setupMock(users, tokens)

			svc := NewAuthService(users, tokens)
			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "issued-token", token)
				assert.Equal(t, tt.email, user.Email)
			}

			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes the token", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenStore)
		tokens.On("Revoke", mock.Anything, "some-token").Return(nil)

		svc := NewAuthService(users, tokens)
		assert.NoError(t, svc.Logout(context.Background(), "some-token"))
		tokens.AssertExpectations(t)
	})

	t.Run("absent token is not an error", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenStore)
		tokens.On("Revoke", mock.Anything, "gone-token").Return(apperrors.ErrInvalidToken)

		svc := NewAuthService(users, tokens)
		assert.NoError(t, svc.Logout(context.Background(), "gone-token"))
		tokens.AssertExpectations(t)
	})
}
