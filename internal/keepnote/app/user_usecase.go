// Package app содержит сценарии keepnote: учетные записи, вход и CRUD категорий, заметок и напоминаний.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
	"keepnote/internal/keepnote/ports/repositories"
	svc "keepnote/internal/keepnote/ports/services"
	"keepnote/internal/keepnote/ports/sessions"
	"keepnote/pkg/logger"
)

const (
	methodRegister   = "Register"
	methodUpdateUser = "UpdateUser"
	methodDeleteUser = "DeleteUser"

	msgUserRegistered = "user registered successfully"
	msgUserUpdated    = "user updated successfully"
	msgUserDeleted    = "user deleted successfully"

	msgErrHashPassword = "failed to hash password"
	msgErrEndSessions  = "user deleted but sessions were not closed"

	errCtxValidatingUser  = "validating user"
	errCtxHashingPassword = "hashing password"
	errCtxCreatingUser    = "creating user"
	errCtxFindingUser     = "finding user"
	errCtxUpdatingUser    = "updating user"
	errCtxDeletingUser    = "deleting user"
	errCtxEndingSessions  = "closing user sessions"
)

// UserUseCase реализует api.UserService.
type UserUseCase struct {
	users       repositories.UserRepository
	sessions    sessions.Store
	passwordSvc svc.PasswordService
}

var _ api.UserService = (*UserUseCase)(nil)

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(
	users repositories.UserRepository,
	store sessions.Store,
	passwordSvc svc.PasswordService,
) *UserUseCase {
	return &UserUseCase{users: users, sessions: store, passwordSvc: passwordSvc}
}

// Register сохраняет пользователя с bcrypt-хешем пароля. Занятый идентификатор дает ErrUserAlreadyExists.
func (u *UserUseCase) Register(ctx context.Context, user *entities.User, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("user_id", user.ID))

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, err)
	}
	if password == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrEmptyPassword)
	}

	hash, err := u.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}
	user.Password = hash

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered)
	return created, nil
}

// Update заменяет профиль пользователя id. Пустой пароль сохраняет прежний хеш.
func (u *UserUseCase) Update(ctx context.Context, user *entities.User, password string, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.String("user_id", id))

	user.ID = id
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, err)
	}

	if password == "" {
		existing, err := u.users.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
		}
		user.Password = existing.Password
	} else {
		hash, err := u.passwordSvc.Hash(ctx, password)
		if err != nil {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		user.Password = hash
	}

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return updated, nil
}

// Delete удаляет пользователя и закрывает все его сессии.
func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.String("user_id", id))

	if err := u.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	if err := u.sessions.DeleteByUser(ctx, id); err != nil {
		log.Error(ctx, msgErrEndSessions, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxEndingSessions, err)
	}

	log.Info(ctx, msgUserDeleted)
	return nil
}

// GetByID возвращает пользователя.
func (u *UserUseCase) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	return user, nil
}
