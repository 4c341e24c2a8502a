package auth

import (
	"context"
	"time"

	apperrors "github.com/vladimirfomene/raggnet/internal/errors"
)

const sessionKeyPrefix = "session:"

// SessionBackend is the key-value store holding live session records.
// *cache.Client satisfies it.
type SessionBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TokenStoreInterface defines the interface for session token operations.
// A token resolves only while its record is live; revocation and TTL expiry
// both surface as absence, which Resolve reports as ErrInvalidToken rather
// than panicking or failing the request pipeline in any other way.
type TokenStoreInterface interface {
	Issue(ctx context.Context, user string) (token string, err error)
	Resolve(ctx context.Context, token string) (userID string, err error)
	Revoke(ctx context.Context, token string) error
}

// TokenStore issues signed tokens and records their session IDs in Redis.
type TokenStore struct {
	jwt      *JWTService
	sessions SessionBackend
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(jwt *JWTService, sessions SessionBackend) *TokenStore {
	return &TokenStore{jwt: jwt, sessions: sessions}
}

// Issue generates a token for the user and records its session in Redis
// with a TTL matching the token lifetime.
func (s *TokenStore) Issue(ctx context.Context, userID string) (string, error) {
	tokenID, token, err := s.jwt.Generate(userID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Set(ctx, sessionKeyPrefix+tokenID, []byte(userID), s.jwt.TTL()); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the owning user for a live token. Expired, unknown, and
// revoked tokens all resolve to ErrInvalidToken.
func (s *TokenStore) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}
	data, err := s.sessions.Get(ctx, sessionKeyPrefix+claims.ID)
	if err != nil || data == nil {
		return "", apperrors.ErrInvalidToken
	}
	return string(data), nil
}

// Revoke deletes the token's session record. Revoking an absent or
// malformed token is a no-op, not an error.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	claims, err := s.jwt.Validate(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionKeyPrefix+claims.ID)
}
