package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
	"keepnote/internal/keepnote/ports/repositories"
	"keepnote/pkg/logger"
)

const (
	msgCategoryCreated = "category created"
	msgCategoryUpdated = "category updated"
	msgCategoryDeleted = "category deleted"

	errCtxCreatingCategory = "creating category"
	errCtxUpdatingCategory = "updating category"
	errCtxDeletingCategory = "deleting category"
	errCtxFindingCategory  = "finding category"
	errCtxListCategories   = "listing categories"
)

// CategoryUseCase реализует api.CategoryService.
type CategoryUseCase struct {
	categories repositories.CategoryRepository
}

var _ api.CategoryService = (*CategoryUseCase)(nil)

// NewCategoryUseCase создает новый экземпляр сервиса категорий.
func NewCategoryUseCase(categories repositories.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Create сохраняет категорию. Занятый идентификатор дает ErrCategoryAlreadyExists.
func (c *CategoryUseCase) Create(ctx context.Context, category *entities.Category) (*entities.Category, error) {
	if err := validateID(category.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingCategory, err)
	}

	created, err := c.categories.Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingCategory, err)
	}

	logger.Log(ctx).Info(ctx, msgCategoryCreated,
		zap.Int64("category_id", created.ID), zap.String("user_id", created.CreatedBy))
	return created, nil
}

// Update заменяет категорию id, принадлежащую category.CreatedBy.
func (c *CategoryUseCase) Update(ctx context.Context, category *entities.Category, id int64) (*entities.Category, error) {
	category.ID = id

	updated, err := c.categories.Update(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingCategory, err)
	}

	logger.Log(ctx).Info(ctx, msgCategoryUpdated, zap.Int64("category_id", id))
	return updated, nil
}

// Delete удаляет категорию пользователя.
func (c *CategoryUseCase) Delete(ctx context.Context, id int64, userID string) error {
	if err := c.categories.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingCategory, err)
	}

	logger.Log(ctx).Info(ctx, msgCategoryDeleted, zap.Int64("category_id", id))
	return nil
}

// GetByID возвращает категорию пользователя.
func (c *CategoryUseCase) GetByID(ctx context.Context, id int64, userID string) (*entities.Category, error) {
	category, err := c.categories.FindByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingCategory, err)
	}
	return category, nil
}

// GetAllByUser возвращает категории пользователя.
func (c *CategoryUseCase) GetAllByUser(ctx context.Context, userID string) ([]*entities.Category, error) {
	categories, err := c.categories.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListCategories, err)
	}
	return categories, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return entities.ErrInvalidID
	}
	return nil
}
