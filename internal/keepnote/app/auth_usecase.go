package app

import (
	"context"
	"errors"
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
	methodLogin   = "Login"
	methodLogout  = "Logout"
	methodResolve = "Resolve"

	msgLoginUnknownUser  = "login attempt for unknown user"
	msgInvalidPassword   = "invalid password provided"
	msgUserLoggedIn      = "user logged in successfully"
	msgUserLoggedOut     = "user logged out successfully"
	msgSessionMismatch   = "session does not belong to token subject"
	msgSessionTokenStale = "session token rejected"

	msgErrVerifyPassword = "error verifying password"
	msgErrCreateSession  = "failed to create session"
	msgErrGenerateToken  = "failed to generate session token"

	errCtxVerifyingPassword = "verifying password"
	errCtxCreatingSession   = "creating session"
	errCtxGeneratingToken   = "generating session token"
	errCtxDeletingSession   = "deleting session"
	errCtxValidatingToken   = "validating session token"
	errCtxLoadingSession    = "loading session"
)

// AuthUseCase реализует api.AuthService: проверку учетных данных и жизненный цикл сессий.
type AuthUseCase struct {
	users       repositories.UserRepository
	sessions    sessions.Store
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

var _ api.AuthService = (*AuthUseCase)(nil)

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	users repositories.UserRepository,
	store sessions.Store,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) *AuthUseCase {
	return &AuthUseCase{
		users:       users,
		sessions:    store,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// ValidateUser проверяет пару идентификатор и пароль. Неизвестный пользователь и неверный
// пароль неразличимы для вызывающего: оба дают ErrInvalidCredentials.
func (a *AuthUseCase) ValidateUser(ctx context.Context, userID, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("user_id", userID))

	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			log.Debug(ctx, msgLoginUnknownUser)
			return nil, entities.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.Password)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPassword)
		return nil, entities.ErrInvalidCredentials
	}

	return user, nil
}

// Login проверяет учетные данные, открывает сессию и подписывает токен для cookie.
func (a *AuthUseCase) Login(ctx context.Context, userID, password string) (*api.LoginResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("user_id", userID))

	user, err := a.ValidateUser(ctx, userID, password)
	if err != nil {
		return nil, err
	}

	session, err := a.sessions.Create(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrCreateSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingSession, err)
	}

	token, err := a.tokenSvc.GenerateSessionToken(ctx, session.ID, user.ID, session.ExpiresAt)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		_ = a.sessions.Delete(ctx, session.ID)
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("session_id", session.ID))
	return &api.LoginResult{User: user, Session: session, Token: token}, nil
}

// Logout закрывает сессию.
func (a *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingSession, err)
	}

	logger.Log(ctx).Info(ctx, msgUserLoggedOut,
		zap.String("method", methodLogout), zap.String("session_id", sessionID))
	return nil
}

// Resolve восстанавливает сессию по токену из cookie. Любая причина отказа
// возвращается как ErrUnauthenticated, кроме сбоев хранилища.
func (a *AuthUseCase) Resolve(ctx context.Context, token string) (*entities.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolve))

	claims, err := a.tokenSvc.ValidateSessionToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgSessionTokenStale, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, entities.ErrUnauthenticated, err)
	}

	session, err := a.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w: %w", errCtxLoadingSession, entities.ErrUnauthenticated, err)
		}
		return nil, fmt.Errorf("%s: %w", errCtxLoadingSession, err)
	}

	if session.UserID != claims.UserID {
		log.Warn(ctx, msgSessionMismatch, zap.String("session_id", session.ID))
		return nil, fmt.Errorf("%s: %w", errCtxLoadingSession, entities.ErrUnauthenticated)
	}

	return session, nil
}
