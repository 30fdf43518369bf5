// Package sessions определяет порт хранилища сессий.
package sessions

import (
	"context"

	"keepnote/internal/keepnote/domain/entities"
)

// Store владеет жизненным циклом сессий: создание при входе, удаление при выходе, истечение по TTL.
type Store interface {
	Create(ctx context.Context, userID string) (*entities.Session, error)

	Get(ctx context.Context, sessionID string) (*entities.Session, error)

	Delete(ctx context.Context, sessionID string) error

	// DeleteByUser закрывает все сессии пользователя.
	DeleteByUser(ctx context.Context, userID string) error
}
