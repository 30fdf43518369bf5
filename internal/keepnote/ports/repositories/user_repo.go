// Package repositories определяет порты хранения сущностей keepnote.
package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
