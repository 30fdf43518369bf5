// Package api определяет порты сценариев, которые вызывает HTTP слой.
package api

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// UserService управляет учетными записями.
type UserService interface {
	Register(ctx context.Context, user *entities.User, password string) (*entities.User, error)

	Update(ctx context.Context, user *entities.User, password string, id string) (*entities.User, error)

	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*entities.User, error)
}

// AuthService отвечает за вход, выход и разрешение сессий.
type AuthService interface {
	ValidateUser(ctx context.Context, userID, password string) (*entities.User, error)

	Login(ctx context.Context, userID, password string) (*LoginResult, error)

	Logout(ctx context.Context, sessionID string) error

	Resolve(ctx context.Context, token string) (*entities.Session, error)
}

// LoginResult содержит пользователя, его сессию и подписанный токен для cookie.
type LoginResult struct {
	User    *entities.User
	Session *entities.Session
	Token   string
}

// CategoryService управляет категориями пользователя.
type CategoryService interface {
	Create(ctx context.Context, category *entities.Category) (*entities.Category, error)

	Update(ctx context.Context, category *entities.Category, id int64) (*entities.Category, error)

	Delete(ctx context.Context, id int64, userID string) error

	GetByID(ctx context.Context, id int64, userID string) (*entities.Category, error)

	GetAllByUser(ctx context.Context, userID string) ([]*entities.Category, error)
}

// NoteService управляет заметками пользователя.
type NoteService interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Update(ctx context.Context, note *entities.Note, id int64) (*entities.Note, error)

	Delete(ctx context.Context, id int64, userID string) error

	GetByID(ctx context.Context, id int64, userID string) (*entities.Note, error)

	GetAllByUser(ctx context.Context, userID string) ([]*entities.Note, error)
}

// ReminderService управляет напоминаниями пользователя.
type ReminderService interface {
	Create(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error)

	Update(ctx context.Context, reminder *entities.Reminder, id int64) (*entities.Reminder, error)

	Delete(ctx context.Context, id int64, userID string) error

	GetByID(ctx context.Context, id int64, userID string) (*entities.Reminder, error)

	GetAllByUser(ctx context.Context, userID string) ([]*entities.Reminder, error)
}
