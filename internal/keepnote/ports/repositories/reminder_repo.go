package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// ReminderRepository хранит напоминания.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error)

	FindByID(ctx context.Context, id int64, userID string) (*entities.Reminder, error)

	FindByUser(ctx context.Context, userID string) ([]*entities.Reminder, error)

	Update(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error)

	Delete(ctx context.Context, id int64, userID string) error
}
