// Package entities содержит сущности домена keepnote и их ошибки.
package entities

import (
	"errors"
	"fmt"
)

// Базовые категории ошибок. Обработчики HTTP сопоставляют статус по ним через errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Ошибки конкретных сущностей.
var (
	ErrUserNotFound     = fmt.Errorf("user: %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category: %w", ErrNotFound)
	ErrNoteNotFound     = fmt.Errorf("note: %w", ErrNotFound)
	ErrReminderNotFound = fmt.Errorf("reminder: %w", ErrNotFound)
	ErrSessionNotFound  = fmt.Errorf("session: %w", ErrNotFound)

	ErrUserAlreadyExists     = fmt.Errorf("user: %w", ErrAlreadyExists)
	ErrCategoryAlreadyExists = fmt.Errorf("category: %w", ErrAlreadyExists)
	ErrNoteAlreadyExists     = fmt.Errorf("note: %w", ErrAlreadyExists)
	ErrReminderAlreadyExists = fmt.Errorf("reminder: %w", ErrAlreadyExists)

	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	ErrEmptyUserID        = fmt.Errorf("user id cannot be empty: %w", ErrInvalidInput)
	ErrEmptyPassword      = fmt.Errorf("password cannot be empty: %w", ErrInvalidInput)
	ErrInvalidID          = fmt.Errorf("identifier must be positive: %w", ErrInvalidInput)
)
