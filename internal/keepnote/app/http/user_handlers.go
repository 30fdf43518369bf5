package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"keepnote/internal/keepnote/app/dto"
	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
)

// UserHandler содержит HTTP обработчики учетных записей.
type UserHandler struct {
	users  api.UserService
	cookie CookieConfig
	now    func() time.Time
}

// NewUserHandler создает новый экземпляр обработчика пользователей.
func NewUserHandler(users api.UserService, cookie CookieConfig, now func() time.Time) *UserHandler {
	return &UserHandler{users: users, cookie: cookie, now: now}
}

// Register регистрирует пользователя. Сессия не требуется.
func (h *UserHandler) Register(ctx fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindJSON(ctx, &req); err != nil {
		return respond(ctx, OutcomeCreated, nil, err)
	}

	user := req.ToUser()
	user.AddedDate = h.now().UTC()

	created, err := h.users.Register(ctx.Context(), user, req.Password)
	if err != nil {
		return respond(ctx, OutcomeCreated, nil, err)
	}
	return respond(ctx, OutcomeCreated, created, nil)
}

// Update заменяет профиль вошедшего пользователя.
func (h *UserHandler) Update(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.User, error) {
		id, err := ownUserID(ctx, userID)
		if err != nil {
			return nil, err
		}

		var req dto.UpdateUserRequest
		if err := bindJSON(ctx, &req); err != nil {
			return nil, err
		}

		user := req.ToUser()
		user.AddedDate = h.now().UTC()
		return h.users.Update(requestCtx, user, req.Password, id)
	})
}

// Delete удаляет учетную запись вошедшего пользователя. Его сессии закрываются, cookie удаляется.
func (h *UserHandler) Delete(ctx fiber.Ctx) error {
	return invokeStatus(ctx, func(requestCtx context.Context, userID string) error {
		id, err := ownUserID(ctx, userID)
		if err != nil {
			return err
		}
		if err := h.users.Delete(requestCtx, id); err != nil {
			return err
		}
		clearSessionCookie(ctx, h.cookie)
		return nil
	})
}

// Get возвращает профиль вошедшего пользователя.
func (h *UserHandler) Get(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.User, error) {
		id, err := ownUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return h.users.GetByID(requestCtx, id)
	})
}

// ownUserID отдает чужие учетные записи как несуществующие.
func ownUserID(ctx fiber.Ctx, userID string) (string, error) {
	id := ctx.Params("id")
	if id != userID {
		return "", entities.ErrUserNotFound
	}
	return id, nil
}
