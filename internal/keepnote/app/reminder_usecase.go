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
	msgReminderCreated = "reminder created"
	msgReminderUpdated = "reminder updated"
	msgReminderDeleted = "reminder deleted"

	errCtxCreatingReminder = "creating reminder"
	errCtxUpdatingReminder = "updating reminder"
	errCtxDeletingReminder = "deleting reminder"
	errCtxFindingReminder  = "finding reminder"
	errCtxListReminders    = "listing reminders"
)

// ReminderUseCase реализует api.ReminderService.
type ReminderUseCase struct {
	reminders repositories.ReminderRepository
}

var _ api.ReminderService = (*ReminderUseCase)(nil)

// NewReminderUseCase создает новый экземпляр сервиса напоминаний.
func NewReminderUseCase(reminders repositories.ReminderRepository) *ReminderUseCase {
	return &ReminderUseCase{reminders: reminders}
}

func (r *ReminderUseCase) Create(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error) {
	if err := validateID(reminder.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingReminder, err)
	}

	created, err := r.reminders.Create(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingReminder, err)
	}

	logger.Log(ctx).Info(ctx, msgReminderCreated, zap.Int64("reminder_id", created.ID))
	return created, nil
}

func (r *ReminderUseCase) Update(ctx context.Context, reminder *entities.Reminder, id int64) (*entities.Reminder, error) {
	reminder.ID = id

	updated, err := r.reminders.Update(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingReminder, err)
	}

	logger.Log(ctx).Info(ctx, msgReminderUpdated, zap.Int64("reminder_id", id))
	return updated, nil
}

func (r *ReminderUseCase) Delete(ctx context.Context, id int64, userID string) error {
	if err := r.reminders.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingReminder, err)
	}

	logger.Log(ctx).Info(ctx, msgReminderDeleted, zap.Int64("reminder_id", id))
	return nil
}

func (r *ReminderUseCase) GetByID(ctx context.Context, id int64, userID string) (*entities.Reminder, error) {
	reminder, err := r.reminders.FindByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingReminder, err)
	}
	return reminder, nil
}

func (r *ReminderUseCase) GetAllByUser(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	reminders, err := r.reminders.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListReminders, err)
	}
	return reminders, nil
}
