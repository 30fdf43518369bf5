package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/keepnote/adapters/postgres"
	"keepnote/internal/keepnote/domain/entities"
)

var noteCols = []string{"id", "title", "content", "status", "created_at", "category_id", "reminder_id", "created_by"}

func TestNoteRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	note := &entities.Note{
		ID: 11, Title: "groceries", Content: "milk", Status: "active",
		CreatedAt: now, CategoryID: ptr(int64(3)), CreatedBy: "alice",
	}
	args := []any{note.ID, note.Title, note.Content, note.Status, note.CreatedAt, note.CategoryID, note.ReminderID, note.CreatedBy}

	t.Run("created with optional references", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO notes .+").
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows(noteCols).
				AddRow(note.ID, note.Title, note.Content, note.Status, note.CreatedAt, note.CategoryID, nil, note.CreatedBy))

		created, err := postgres.NewNoteRepository(mock).Create(ctx, note)
		require.NoError(t, err)
		require.NotNil(t, created.CategoryID)
		assert.Equal(t, int64(3), *created.CategoryID)
		assert.Nil(t, created.ReminderID)
		assert.Equal(t, "alice", created.CreatedBy)
	})

	t.Run("duplicate id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO notes .+").WithArgs(args...).WillReturnError(uniqueViolation())

		_, err := postgres.NewNoteRepository(mock).Create(ctx, note)
		assert.ErrorIs(t, err, entities.ErrNoteAlreadyExists)
	})

	t.Run("missing category reference", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO notes .+").WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "notes_category_id_fkey"})

		_, err := postgres.NewNoteRepository(mock).Create(ctx, note)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})

	t.Run("missing reminder reference", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO notes .+").WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "notes_reminder_id_fkey"})

		_, err := postgres.NewNoteRepository(mock).Create(ctx, note)
		assert.ErrorIs(t, err, entities.ErrReminderNotFound)
	})

	t.Run("missing owner", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO notes .+").WithArgs(args...).
			WillReturnError(foreignKeyViolation("notes_created_by_fkey"))

		_, err := postgres.NewNoteRepository(mock).Create(ctx, note)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestNoteRepository_ReadUpdateDelete(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()

	t.Run("list by user", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM notes WHERE created_by = \\$1").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(noteCols).
				AddRow(int64(2), "b", "", "", now, nil, ptr(int64(5)), "alice").
				AddRow(int64(1), "a", "", "", now, nil, nil, "alice"))

		notes, err := postgres.NewNoteRepository(mock).FindByUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		require.NotNil(t, notes[0].ReminderID)
		assert.Equal(t, int64(5), *notes[0].ReminderID)
	})

	t.Run("find missing", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM notes WHERE id = \\$1 AND created_by = \\$2").
			WithArgs(int64(4), "alice").
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewNoteRepository(mock).FindByID(ctx, 4, "alice")
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})

	t.Run("update missing", func(t *testing.T) {
		note := &entities.Note{ID: 4, Title: "t", CreatedAt: now, CreatedBy: "alice"}
		mock := newMockPool(t)
		mock.ExpectQuery("UPDATE notes .+").
			WithArgs(note.ID, note.CreatedBy, note.Title, note.Content, note.Status, note.CreatedAt, note.CategoryID, note.ReminderID).
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewNoteRepository(mock).Update(ctx, note)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("DELETE FROM notes").WithArgs(int64(4), "alice").WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("DELETE FROM notes").WithArgs(int64(4), "alice").WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewNoteRepository(mock)
		require.NoError(t, repo.Delete(ctx, 4, "alice"))
		assert.ErrorIs(t, repo.Delete(ctx, 4, "alice"), entities.ErrNoteNotFound)
	})
}
