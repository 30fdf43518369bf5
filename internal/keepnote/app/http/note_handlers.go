package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
)

// NoteHandler содержит HTTP обработчики заметок.
type NoteHandler struct {
	notes api.NoteService
	now   func() time.Time
}

// NewNoteHandler создает новый экземпляр обработчика заметок.
func NewNoteHandler(notes api.NoteService, now func() time.Time) *NoteHandler {
	return &NoteHandler{notes: notes, now: now}
}

func (h *NoteHandler) Create(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeCreated, func(requestCtx context.Context, userID string) (*entities.Note, error) {
		var note entities.Note
		if err := bindJSON(ctx, &note); err != nil {
			return nil, err
		}

		note.Stamp(userID, h.now().UTC())
		return h.notes.Create(requestCtx, &note)
	})
}

// Update берет идентификатор заметки из тела запроса.
func (h *NoteHandler) Update(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.Note, error) {
		var note entities.Note
		if err := bindJSON(ctx, &note); err != nil {
			return nil, err
		}
		if note.ID <= 0 {
			return nil, fmt.Errorf("%s: %w", errBindBody, entities.ErrInvalidID)
		}

		note.Stamp(userID, h.now().UTC())
		return h.notes.Update(requestCtx, &note, note.ID)
	})
}

func (h *NoteHandler) Delete(ctx fiber.Ctx) error {
	return invokeStatus(ctx, func(requestCtx context.Context, userID string) error {
		id, err := pathID(ctx)
		if err != nil {
			return err
		}
		return h.notes.Delete(requestCtx, id, userID)
	})
}

// List возвращает заметки пользователя, в том числе пустой список.
func (h *NoteHandler) List(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) ([]*entities.Note, error) {
		notes, err := h.notes.GetAllByUser(requestCtx, userID)
		if err != nil {
			return nil, err
		}
		return emptyIfNil(notes), nil
	})
}

func (h *NoteHandler) Get(ctx fiber.Ctx) error {
	return invoke(ctx, OutcomeOK, func(requestCtx context.Context, userID string) (*entities.Note, error) {
		id, err := pathID(ctx)
		if err != nil {
			return nil, err
		}
		return h.notes.GetByID(requestCtx, id, userID)
	})
}
