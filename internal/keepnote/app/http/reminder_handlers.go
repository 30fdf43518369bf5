package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
)

// ReminderHandler содержит HTTP обработчики напоминаний.
type ReminderHandler struct {
	reminders api.ReminderService
	now       func() time.Time
}

// NewReminderHandler создает новый экземпляр обработчика напоминаний.
func NewReminderHandler(reminders api.ReminderService, now func() time.Time) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, now: now}
}

func (h *ReminderHandler) Create(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeCreated, func(requestCtx context.Context, userID string) (*entities.Reminder, error) {
		var reminder entities.Reminder
		if err := bindJSON(ctx, &reminder); err != nil {
			return nil, err
		}

		reminder.Stamp(userID, h.now().UTC())
		return h.reminders.Create(requestCtx, &reminder)
	})
}

func (h *ReminderHandler) Update(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.Reminder, error) {
		id, err := pathID(ctx)
		if err != nil {
			return nil, err
		}

		var reminder entities.Reminder
		if err := bindJSON(ctx, &reminder); err != nil {
			return nil, err
		}

		reminder.Stamp(userID, h.now().UTC())
		return h.reminders.Update(requestCtx, &reminder, id)
	})
}

func (h *ReminderHandler) Delete(ctx fiber.Ctx) error {
	return invokeStatus(ctx, func(requestCtx context.Context, userID string) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		return h.reminders.Delete(requestCtx, id, userID)
	})
}

func (h *ReminderHandler) List(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) ([]*entities.Reminder, error) {
		reminders, err := h.reminders.GetAllByUser(requestCtx, userID)
		if err != nil {
			return nil, err
		}
		return emptyIfNil(reminders), nil
	})
}

func (h *ReminderHandler) Get(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.Reminder, error) {
		id, err := pathID(ctx)
		if err != nil {
			return nil, err
		}
		return h.reminders.GetByID(requestCtx, id, userID)
	})
}
