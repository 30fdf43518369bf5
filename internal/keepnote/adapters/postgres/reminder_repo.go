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

const reminderColumns = `id, name, description, type, creation_date, created_by`

// Константы сообщений репозитория напоминаний.
const (
	ErrCreateReminder = "error creating reminder"
	ErrFindReminder   = "error querying reminder"
	ErrListReminders  = "error listing reminders"
	ErrUpdateReminder = "error updating reminder"
	ErrDeleteReminder = "error deleting reminder"
)

// ReminderRepository реализует repositories.ReminderRepository.
type ReminderRepository struct {
	pool PgxPoolInterface
}

// NewReminderRepository создает репозиторий напоминаний.
func NewReminderRepository(pool PgxPoolInterface) repositories.ReminderRepository {
	return &ReminderRepository{pool: pool}
}

func scanReminder(row rowScanner) (*entities.Reminder, error) {
	var rem entities.Reminder
	err := row.Scan(&rem.ID, &rem.Name, &rem.Description, &rem.Type, &rem.CreationDate, &rem.CreatedBy)
	if err != nil {
		return nil, err //nolint:wrapcheck // оборачивает вызывающий
	}
	return &rem, nil
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "Create"))

	query := `
        INSERT INTO reminders (` + reminderColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + reminderColumns

	created, err := scanReminder(r.pool.QueryRow(ctx, query,
		reminder.ID, reminder.Name, reminder.Description, reminder.Type, reminder.CreationDate, reminder.CreatedBy))
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "reminder already exists", zap.Int64("id", reminder.ID))
			return nil, entities.ErrReminderAlreadyExists
		}
		if isForeignKeyViolation(err) {
			log.Debug(ctx, "reminder owner does not exist", zap.String("user_id", reminder.CreatedBy))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, ErrCreateReminder, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateReminder, err)
	}
	return created, nil
}

func (r *ReminderRepository) FindByID(ctx context.Context, id int64, userID string) (*entities.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1 AND created_by = $2`

	reminder, err := scanReminder(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrReminderNotFound
		}
		logger.Log(ctx).Error(ctx, ErrFindReminder, zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFindReminder, err)
	}
	return reminder, nil
}

func (r *ReminderRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Reminder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reminder"), zap.String("method", "FindByUser"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE created_by = $1 ORDER BY id`, userID)
	if err != nil {
		log.Error(ctx, ErrListReminders, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListReminders, err)
	}
	defer rows.Close()

	reminders := make([]*entities.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			log.Error(ctx, ErrListReminders, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrListReminders, err)
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrListReminders, err)
	}

	return reminders, nil
}

func (r *ReminderRepository) Update(ctx context.Context, reminder *entities.Reminder) (*entities.Reminder, error) {
	query := `
        UPDATE reminders
        SET name = $3, description = $4, type = $5, creation_date = $6
        WHERE id = $1 AND created_by = $2
        RETURNING ` + reminderColumns

	updated, err := scanReminder(r.pool.QueryRow(ctx, query,
		reminder.ID, reminder.CreatedBy, reminder.Name, reminder.Description, reminder.Type, reminder.CreationDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrReminderNotFound
		}
		logger.Log(ctx).Error(ctx, ErrUpdateReminder, zap.Int64("id", reminder.ID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdateReminder, err)
	}
	return updated, nil
}

// Delete удаляет напоминание; заметки, ссылавшиеся на него, теряют связь через ON DELETE SET NULL.
func (r *ReminderRepository) Delete(ctx context.Context, id int64, userID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND created_by = $2`, id, userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrDeleteReminder, zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteReminder, err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrReminderNotFound
	}
	return nil
}
