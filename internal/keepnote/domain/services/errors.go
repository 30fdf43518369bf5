// Package services содержит ошибки вспомогательных доменных сервисов.
package services

import "errors"

// Ошибки паролей.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrHashingFailed   = errors.New("failed to hash password")
)

// Ошибки токенов сессии.
var (
	ErrInvalidSessionToken    = errors.New("invalid session token")
	ErrExpiredSessionToken    = errors.New("session token has expired")
	ErrGeneratingSessionToken = errors.New("failed to generate session token")
)
