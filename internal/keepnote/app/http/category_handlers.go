package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
)

// CategoryHandler содержит HTTP обработчики категорий.
type CategoryHandler struct {
	categories api.CategoryService
	now        func() time.Time
}

// NewCategoryHandler создает новый экземпляр обработчика категорий.
func NewCategoryHandler(categories api.CategoryService, now func() time.Time) *CategoryHandler {
	return &CategoryHandler{categories: categories, now: now}
}

// Create создает категорию от имени вошедшего пользователя.
func (h *CategoryHandler) Create(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeCreated, func(requestCtx context.Context, userID string) (*entities.Category, error) {
		var category entities.Category
		if err := bindJSON(ctx, &category); err != nil {
			return nil, err
		}

		category.Stamp(userID, h.now().UTC())
		return h.categories.Create(requestCtx, &category)
	})
}

// Update заменяет категорию из пути.
func (h *CategoryHandler) Update(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.Category, error) {
		id, err := pathID(ctx)
		if err != nil {
			return nil, err
		}

		var category entities.Category
		if err := bindJSON(ctx, &category); err != nil {
			return nil, err
		}

		category.Stamp(userID, h.now().UTC())
		return h.categories.Update(requestCtx, &category, id)
	})
}

// Delete удаляет категорию.
func (h *CategoryHandler) Delete(ctx fiber.Ctx) error {
	return invokeStatus(ctx, func(requestCtx context.Context, userID string) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		return h.categories.Delete(requestCtx, id, userID)
	})
}

// List возвращает категории пользователя. Пустой список отдается как 404.
func (h *CategoryHandler) List(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) ([]*entities.Category, error) {
		categories, err := h.categories.GetAllByUser(requestCtx, userID)
		if err != nil {
			return nil, err
		}
		if len(categories) == 0 {
			return nil, entities.ErrCategoryNotFound
		}
		return categories, nil
	})
}

// Get возвращает категорию по идентификатору.
func (h *CategoryHandler) Get(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.Category, error) {
		id, err := pathID(ctx)
		if err != nil {
			return nil, err
		}
		return h.categories.GetByID(requestCtx, id, userID)
	})
}
