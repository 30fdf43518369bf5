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
	msgNoteCreated = "note created"
	msgNoteUpdated = "note updated"
	msgNoteDeleted = "note deleted"

	errCtxCreatingNote = "creating note"
	errCtxUpdatingNote = "updating note"
	errCtxDeletingNote = "deleting note"
	errCtxFindingNote  = "finding note"
	errCtxListNotes    = "listing notes"
	errCtxCheckingRefs = "checking note references"
)

// NoteUseCase реализует api.NoteService. Заметка может ссылаться только на
// категорию и напоминание своего автора.
type NoteUseCase struct {
	notes      repositories.NoteRepository
	categories repositories.CategoryRepository
	reminders  repositories.ReminderRepository
}

var _ api.NoteService = (*NoteUseCase)(nil)

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(
	notes repositories.NoteRepository,
	categories repositories.CategoryRepository,
	reminders repositories.ReminderRepository,
) *NoteUseCase {
	return &NoteUseCase{notes: notes, categories: categories, reminders: reminders}
}

// Create проверяет ссылки заметки и сохраняет ее.
func (uc *NoteUseCase) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	if err := validateID(note.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}
	if err := uc.checkReferences(ctx, note); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	created, err := uc.notes.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	logger.Log(ctx).Info(ctx, msgNoteCreated,
		zap.Int64("note_id", created.ID), zap.String("user_id", created.CreatedBy))
	return created, nil
}

// Update заменяет заметку id после проверки ссылок.
func (uc *NoteUseCase) Update(ctx context.Context, note *entities.Note, id int64) (*entities.Note, error) {
	note.ID = id
	if err := uc.checkReferences(ctx, note); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	updated, err := uc.notes.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	logger.Log(ctx).Info(ctx, msgNoteUpdated, zap.Int64("note_id", id))
	return updated, nil
}

// Delete удаляет заметку пользователя.
func (uc *NoteUseCase) Delete(ctx context.Context, id int64, userID string) error {
	if err := uc.notes.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	logger.Log(ctx).Info(ctx, msgNoteDeleted, zap.Int64("note_id", id))
	return nil
}

// GetByID возвращает заметку пользователя.
func (uc *NoteUseCase) GetByID(ctx context.Context, id int64, userID string) (*entities.Note, error) {
	note, err := uc.notes.FindByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}
	return note, nil
}

// GetAllByUser возвращает заметки пользователя, новые первыми.
func (uc *NoteUseCase) GetAllByUser(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.notes.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListNotes, err)
	}
	return notes, nil
}

func (uc *NoteUseCase) checkReferences(ctx context.Context, note *entities.Note) error {
	if note.CategoryID != nil {
		if _, err := uc.categories.FindByID(ctx, *note.CategoryID, note.CreatedBy); err != nil {
			return fmt.Errorf("%s: %w", errCtxCheckingRefs, err)
		}
	}
	if note.ReminderID != nil {
		if _, err := uc.reminders.FindByID(ctx, *note.ReminderID, note.CreatedBy); err != nil {
			return fmt.Errorf("%s: %w", errCtxCheckingRefs, err)
		}
	}
	return nil
}
