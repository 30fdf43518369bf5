package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"keepnote/internal/keepnote/app"
	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/domain/services"
	svc "keepnote/internal/keepnote/ports/services"
)

type authMocks struct {
	users     *mockUserRepository
	sessions  *mockSessionStore
	passwords *mockPasswordService
	tokens    *mockTokenService
}

func newAuth() (*app.AuthUseCase, authMocks) {
	m := authMocks{
		users:     new(mockUserRepository),
		sessions:  new(mockSessionStore),
		passwords: new(mockPasswordService),
		tokens:    new(mockTokenService),
	}
	return app.NewAuthUseCase(m.users, m.sessions, m.passwords, m.tokens), m
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)
	user := &entities.User{ID: "alice", Password: "hash"}
	session := &entities.Session{ID: "sid", UserID: "alice", ExpiresAt: expires}

	t.Run("success", func(t *testing.T) {
		uc, m := newAuth()
		m.users.On("FindByID", ctx, "alice").Return(user, nil)
		m.passwords.On("Verify", ctx, "secret", "hash").Return(true, nil)
		m.sessions.On("Create", ctx, "alice").Return(session, nil)
		m.tokens.On("GenerateSessionToken", ctx, "sid", "alice", expires).Return("signed", nil)

		result, err := uc.Login(ctx, "alice", "secret")

		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, user, result.User)
		assert.Equal(t, session, result.Session)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc, m := newAuth()
		m.users.On("FindByID", ctx, "ghost").Return(nil, entities.ErrUserNotFound)

		_, err := uc.Login(ctx, "ghost", "secret")

		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
		assert.NotErrorIs(t, err, entities.ErrNotFound)
		m.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, m := newAuth()
		m.users.On("FindByID", ctx, "alice").Return(user, nil)
		m.passwords.On("Verify", ctx, "bad", "hash").Return(false, nil)

		_, err := uc.Login(ctx, "alice", "bad")

		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
		m.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("token failure drops session", func(t *testing.T) {
		uc, m := newAuth()
		tokenErr := errors.New("sign failed")
		m.users.On("FindByID", ctx, "alice").Return(user, nil)
		m.passwords.On("Verify", ctx, "secret", "hash").Return(true, nil)
		m.sessions.On("Create", ctx, "alice").Return(session, nil)
		m.tokens.On("GenerateSessionToken", ctx, "sid", "alice", expires).Return("", tokenErr)
		m.sessions.On("Delete", ctx, "sid").Return(nil)

		_, err := uc.Login(ctx, "alice", "secret")

		assert.ErrorIs(t, err, tokenErr)
		m.sessions.AssertExpectations(t)
	})
}

func TestAuthLogout(t *testing.T) {
	ctx := context.Background()
	uc, m := newAuth()
	m.sessions.On("Delete", ctx, "sid").Return(nil).Once()
	m.sessions.On("Delete", ctx, "sid").Return(entities.ErrSessionNotFound)

	require.NoError(t, uc.Logout(ctx, "sid"))
	assert.ErrorIs(t, uc.Logout(ctx, "sid"), entities.ErrNotFound)
}

func TestAuthResolve(t *testing.T) {
	ctx := context.Background()
	claims := &svc.SessionClaims{SessionID: "sid", UserID: "alice"}

	t.Run("valid", func(t *testing.T) {
		uc, m := newAuth()
		m.tokens.On("ValidateSessionToken", ctx, "token").Return(claims, nil)
		m.sessions.On("Get", ctx, "sid").Return(&entities.Session{ID: "sid", UserID: "alice"}, nil)

		session, err := uc.Resolve(ctx, "token")

		require.NoError(t, err)
		userID, ok := session.LoggedInUser()
		assert.True(t, ok)
		assert.Equal(t, "alice", userID)
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, m := newAuth()
		m.tokens.On("ValidateSessionToken", ctx, "token").Return(nil, services.ErrInvalidSessionToken)

		_, err := uc.Resolve(ctx, "token")

		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
		m.sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("session logged out", func(t *testing.T) {
		uc, m := newAuth()
		m.tokens.On("ValidateSessionToken", ctx, "token").Return(claims, nil)
		m.sessions.On("Get", ctx, "sid").Return(nil, entities.ErrSessionNotFound)

		_, err := uc.Resolve(ctx, "token")

		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("subject mismatch", func(t *testing.T) {
		uc, m := newAuth()
		m.tokens.On("ValidateSessionToken", ctx, "token").Return(claims, nil)
		m.sessions.On("Get", ctx, "sid").Return(&entities.Session{ID: "sid", UserID: "mallory"}, nil)

		_, err := uc.Resolve(ctx, "token")

		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		uc, m := newAuth()
		m.tokens.On("ValidateSessionToken", ctx, "token").Return(claims, nil)
		m.sessions.On("Get", ctx, "sid").Return(nil, errDatabase)

		_, err := uc.Resolve(ctx, "token")

		assert.ErrorIs(t, err, errDatabase)
		assert.NotErrorIs(t, err, entities.ErrUnauthenticated)
	})
}
