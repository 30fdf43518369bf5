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

const categoryColumns = `id, name, description, creation_date, created_by`

// Константы сообщений репозитория категорий.
const (
	ErrCreateCategory = "error creating category"
	ErrFindCategory   = "error querying category"
	ErrListCategories = "error listing categories"
	ErrUpdateCategory = "error updating category"
	ErrDeleteCategory = "error deleting category"
)

// CategoryRepository реализует repositories.CategoryRepository.
type CategoryRepository struct {
	pool PgxPoolInterface
}

// NewCategoryRepository создает репозиторий категорий.
func NewCategoryRepository(pool PgxPoolInterface) repositories.CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row rowScanner) (*entities.Category, error) {
	var c entities.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreationDate, &c.CreatedBy); err != nil {
		return nil, err //nolint:wrapcheck // оборачивает вызывающий
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Create"))

	query := `
        INSERT INTO categories (` + categoryColumns + `)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + categoryColumns

	created, err := scanCategory(r.pool.QueryRow(ctx, query,
		category.ID, category.Name, category.Description, category.CreationDate, category.CreatedBy))
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "category already exists", zap.Int64("id", category.ID))
			return nil, entities.ErrCategoryAlreadyExists
		}
		if isForeignKeyViolation(err) {
			log.Debug(ctx, "category owner does not exist", zap.String("user_id", category.CreatedBy))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, ErrCreateCategory, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateCategory, err)
	}

	return created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64, userID string) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "FindByID"))

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND created_by = $2`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, ErrFindCategory, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFindCategory, err)
	}

	return category, nil
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "FindByUser"))

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE created_by = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, ErrListCategories, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListCategories, err)
	}
	defer rows.Close()

	categories := make([]*entities.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			log.Error(ctx, ErrListCategories, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrListCategories, err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrListCategories, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListCategories, err)
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Update"))

	query := `
        UPDATE categories
        SET name = $3, description = $4, creation_date = $5
        WHERE id = $1 AND created_by = $2
        RETURNING ` + categoryColumns

	updated, err := scanCategory(r.pool.QueryRow(ctx, query,
		category.ID, category.CreatedBy, category.Name, category.Description, category.CreationDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCategoryNotFound
		}
		log.Error(ctx, ErrUpdateCategory, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdateCategory, err)
	}

	return updated, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND created_by = $2`, id, userID)
	if err != nil {
		log.Error(ctx, ErrDeleteCategory, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteCategory, err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrCategoryNotFound
	}

	return nil
}
