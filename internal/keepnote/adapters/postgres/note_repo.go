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

const noteColumns = `id, title, content, status, created_at, category_id, reminder_id, created_by`

// Имена внешних ключей таблицы notes.
const (
	noteCategoryFK = "notes_category_id_fkey"
	noteReminderFK = "notes_reminder_id_fkey"
	noteOwnerFK    = "notes_created_by_fkey"
)

// Константы сообщений репозитория заметок.
const (
	ErrCreateNote = "error creating note"
	ErrFindNote   = "error querying note"
	ErrListNotes  = "error listing notes"
	ErrUpdateNote = "error updating note"
	ErrDeleteNote = "error deleting note"
)

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

func scanNote(row rowScanner) (*entities.Note, error) {
	var n entities.Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Status, &n.CreatedAt, &n.CategoryID, &n.ReminderID, &n.CreatedBy)
	if err != nil {
		return nil, err //nolint:wrapcheck // оборачивает вызывающий
	}
	return &n, nil
}

// referenceError переводит нарушение внешнего ключа в ошибку отсутствующей связанной сущности.
// Для прочих ошибок возвращает nil.
func referenceError(err error) error {
	code, constraint, ok := pgErrorCode(err)
	if !ok || code != pgForeignKeyViolation {
		return nil
	}
	switch constraint {
	case noteCategoryFK:
		return entities.ErrCategoryNotFound
	case noteReminderFK:
		return entities.ErrReminderNotFound
	case noteOwnerFK:
		return entities.ErrUserNotFound
	default:
		return entities.ErrNotFound
	}
}

// Create сохраняет заметку. Повтор идентификатора дает ErrNoteAlreadyExists.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	query := `
        INSERT INTO notes (` + noteColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + noteColumns

	created, err := scanNote(r.pool.QueryRow(ctx, query,
		note.ID, note.Title, note.Content, note.Status, note.CreatedAt, note.CategoryID, note.ReminderID, note.CreatedBy))
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "note already exists", zap.Int64("id", note.ID))
			return nil, entities.ErrNoteAlreadyExists
		}
		if refErr := referenceError(err); refErr != nil {
			log.Debug(ctx, "note references missing entity", zap.Error(err))
			return nil, refErr
		}
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateNote, err)
	}

	return created, nil
}

// FindByID возвращает заметку владельца.
func (r *NoteRepository) FindByID(ctx context.Context, id int64, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByID"))

	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND created_by = $2`

	note, err := scanNote(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("id", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, ErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFindNote, err)
	}

	return note, nil
}

// FindByUser возвращает все заметки пользователя, новые первыми.
func (r *NoteRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "FindByUser"))

	query := `SELECT ` + noteColumns + ` FROM notes WHERE created_by = $1 ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, ErrListNotes, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
	}

	return notes, nil
}

// Update перезаписывает заметку владельца.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	query := `
        UPDATE notes
        SET title = $3, content = $4, status = $5, created_at = $6, category_id = $7, reminder_id = $8
        WHERE id = $1 AND created_by = $2
        RETURNING ` + noteColumns

	updated, err := scanNote(r.pool.QueryRow(ctx, query,
		note.ID, note.CreatedBy, note.Title, note.Content, note.Status, note.CreatedAt, note.CategoryID, note.ReminderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.Int64("id", note.ID))
			return nil, entities.ErrNoteNotFound
		}
		if refErr := referenceError(err); refErr != nil {
			return nil, refErr
		}
		log.Error(ctx, ErrUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
	}

	return updated, nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, id int64, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND created_by = $2`, id, userID)
	if err != nil {
		log.Error(ctx, ErrDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteNote, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for delete", zap.Int64("id", id))
		return entities.ErrNoteNotFound
	}

	return nil
}
