package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/keepnote/adapters/postgres"
	"keepnote/internal/keepnote/domain/entities"
)

var categoryCols = []string{"id", "name", "description", "creation_date", "created_by"}

func TestCategoryRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)
	category := &entities.Category{ID: 7, Name: "work", Description: "office", CreationDate: now, CreatedBy: "alice"}

	t.Run("created", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO categories .+").
			WithArgs(category.ID, category.Name, category.Description, category.CreationDate, category.CreatedBy).
			WillReturnRows(pgxmock.NewRows(categoryCols).
				AddRow(category.ID, category.Name, category.Description, category.CreationDate, category.CreatedBy))

		created, err := postgres.NewCategoryRepository(mock).Create(ctx, category)
		require.NoError(t, err)
		assert.Equal(t, category, created)
	})

	t.Run("duplicate id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO categories .+").
			WithArgs(category.ID, category.Name, category.Description, category.CreationDate, category.CreatedBy).
			WillReturnError(uniqueViolation())

		_, err := postgres.NewCategoryRepository(mock).Create(ctx, category)
		assert.ErrorIs(t, err, entities.ErrCategoryAlreadyExists)
	})

	t.Run("owner no longer exists", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("INSERT INTO categories .+").
			WithArgs(category.ID, category.Name, category.Description, category.CreationDate, category.CreatedBy).
			WillReturnError(foreignKeyViolation("categories_created_by_fkey"))

		_, err := postgres.NewCategoryRepository(mock).Create(ctx, category)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}

func TestCategoryRepository_FindByUser(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()

	t.Run("rows are scanned in order", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM categories WHERE created_by = \\$1").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(categoryCols).
				AddRow(int64(1), "home", "", now, "alice").
				AddRow(int64(2), "work", "", now, "alice"))

		list, err := postgres.NewCategoryRepository(mock).FindByUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, int64(1), list[0].ID)
		assert.Equal(t, "work", list[1].Name)
	})

	t.Run("no rows gives empty slice", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM categories").
			WithArgs("bob").
			WillReturnRows(pgxmock.NewRows(categoryCols))

		list, err := postgres.NewCategoryRepository(mock).FindByUser(ctx, "bob")
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM categories").
			WithArgs("alice").
			WillReturnError(errors.New("timeout"))

		_, err := postgres.NewCategoryRepository(mock).FindByUser(ctx, "alice")
		require.Error(t, err)
		assert.Contains(t, err.Error(), postgres.ErrListCategories)
	})
}

func TestCategoryRepository_UpdateDelete(t *testing.T) {
	ctx := testContext(t)
	category := &entities.Category{ID: 7, Name: "w", CreationDate: time.Now().UTC(), CreatedBy: "alice"}

	t.Run("update of foreign or missing row", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("UPDATE categories .+ WHERE id = \\$1 AND created_by = \\$2").
			WithArgs(category.ID, category.CreatedBy, category.Name, category.Description, category.CreationDate).
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewCategoryRepository(mock).Update(ctx, category)
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})

	t.Run("find missing", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT .+ FROM categories WHERE id = \\$1 AND created_by = \\$2").
			WithArgs(int64(99), "alice").
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewCategoryRepository(mock).FindByID(ctx, 99, "alice")
		assert.ErrorIs(t, err, entities.ErrCategoryNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("DELETE FROM categories WHERE id = \\$1 AND created_by = \\$2").
			WithArgs(int64(7), "alice").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(int64(7), "alice").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewCategoryRepository(mock)
		require.NoError(t, repo.Delete(ctx, 7, "alice"))
		assert.ErrorIs(t, repo.Delete(ctx, 7, "alice"), entities.ErrCategoryNotFound)
	})
}
