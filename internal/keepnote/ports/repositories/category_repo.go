package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// CategoryRepository хранит категории. Все выборки ограничены владельцем.
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) (*entities.Category, error)

	FindByID(ctx context.Context, id int64, userID string) (*entities.Category, error)

	FindByUser(ctx context.Context, userID string) ([]*entities.Category, error)

	Update(ctx context.Context, category *entities.Category) (*entities.Category, error)

	Delete(ctx context.Context, id int64, userID string) error
}
