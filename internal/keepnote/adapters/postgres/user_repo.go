package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/repositories"
	"keepnote/pkg/logger"
)

const userColumns = `id, name, password_hash, mobile, added_date`

// Константы сообщений репозитория пользователей.
const (
	ErrCreateUser = "error creating user"
	ErrFindUser   = "error querying user by id"
	ErrUpdateUser = "error updating user"
	ErrDeleteUser = "error deleting user"
)

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row rowScanner) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Name, &u.Password, &u.Mobile, &u.AddedDate); err != nil {
		return nil, err //nolint:wrapcheck // оборачивает вызывающий
	}
	return &u, nil
}

// Create сохраняет нового пользователя. Занятый идентификатор дает ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Password, user.Mobile, user.AddedDate))
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "user already exists", zap.String("id", user.ID))
			return nil, entities.ErrUserAlreadyExists
		}
		log.Error(ctx, ErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateUser, err)
	}

	return created, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, ErrFindUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFindUser, err)
	}

	return user, nil
}

// Update перезаписывает профиль пользователя.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET name = $2, password_hash = $3, mobile = $4, added_date = $5
        WHERE id = $1
        RETURNING ` + userColumns

	updated, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Password, user.Mobile, user.AddedDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("id", user.ID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, ErrUpdateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdateUser, err)
	}

	return updated, nil
}

// Delete удаляет пользователя вместе с его данными.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, ErrDeleteUser, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteUser, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for delete", zap.String("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}
