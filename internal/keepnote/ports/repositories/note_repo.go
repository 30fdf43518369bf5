package repositories

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// NoteRepository хранит заметки.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	FindByID(ctx context.Context, id int64, userID string) (*entities.Note, error)

	FindByUser(ctx context.Context, userID string) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Delete(ctx context.Context, id int64, userID string) error
}
