package postgres

import (
	"keepnote/internal/keepnote/ports/repositories"
)

// RepositoryFactory создает все репозитории поверх одного пула.
type RepositoryFactory struct {
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	noteRepo     repositories.NoteRepository
	reminderRepo repositories.ReminderRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:     NewUserRepository(pool),
		categoryRepo: NewCategoryRepository(pool),
		noteRepo:     NewNoteRepository(pool),
		reminderRepo: NewReminderRepository(pool),
	}
}

func (f *RepositoryFactory) UserRepository() repositories.UserRepository { return f.userRepo }

func (f *RepositoryFactory) CategoryRepository() repositories.CategoryRepository { return f.categoryRepo }

func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository { return f.noteRepo }

func (f *RepositoryFactory) ReminderRepository() repositories.ReminderRepository { return f.reminderRepo }
