package services

import (
	"context"
	"time"
)

// SessionClaims - содержимое подписанного токена сессии.
type SessionClaims struct {
	SessionID string
	UserID    string
	ExpiresAt time.Time
}

// TokenService подписывает и проверяет токен, который хранится в cookie сессии.
type TokenService interface {
	GenerateSessionToken(ctx context.Context, sessionID, userID string, expiresAt time.Time) (string, error)

	ValidateSessionToken(ctx context.Context, token string) (*SessionClaims, error)
}
