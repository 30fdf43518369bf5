// Package redis хранит сессии пользователей в Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/sessions"
	"keepnote/internal/keepnote/resilience"
	"keepnote/pkg/logger"
)

const (
	sessionKeyPrefix      = "session:"
	userSessionsKeyPrefix = "user_sessions:"
)

// Константы для ошибок и логирования.
const (
	ErrCreateSession = "failed to create session"
	ErrGetSession    = "failed to get session"
	ErrDeleteSession = "failed to delete session"
	ErrDecodeSession = "failed to decode session"
	ErrDeleteByUser  = "failed to delete user sessions"

	LogSessionCreated      = "session created"
	LogSessionDeleted      = "session deleted"
	LogUserSessionsDeleted = "user sessions deleted"
)

// SessionStore хранит сессии как JSON под ключом session:<id> со сроком жизни TTL.
// Множество user_sessions:<user> индексирует сессии пользователя и живет не меньше последней из них.
type SessionStore struct {
	client redis.Cmdable
	ttl    time.Duration
	retry  *resilience.Retry
	now    func() time.Time
}

var _ sessions.Store = (*SessionStore)(nil)

// NewSessionStore создает хранилище сессий. Чтения повторяются при сетевых сбоях.
func NewSessionStore(client redis.Cmdable, ttl time.Duration) *SessionStore {
	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.ShouldRetry = func(err error) bool {
		return !errors.Is(err, redis.Nil) &&
			!errors.Is(err, context.Canceled) &&
			!errors.Is(err, context.DeadlineExceeded)
	}

	return &SessionStore{
		client: client,
		ttl:    ttl,
		retry:  resilience.NewRetry("session-store", retryCfg),
		now:    time.Now,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func userSessionsKey(userID string) string {
	return userSessionsKeyPrefix + userID
}

// Create открывает новую сессию для пользователя.
func (s *SessionStore) Create(ctx context.Context, userID string) (*entities.Session, error) {
	if userID == "" {
		return nil, entities.ErrEmptyUserID
	}

	now := s.now().UTC()
	session := &entities.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCreateSession, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.ID), payload, s.ttl)
		pipe.SAdd(ctx, userSessionsKey(userID), session.ID)
		pipe.Expire(ctx, userSessionsKey(userID), s.ttl)
		return nil
	})
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrCreateSession, zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateSession, err)
	}

	logger.Log(ctx).Debug(ctx, LogSessionCreated,
		zap.String("session_id", session.ID), zap.String("user_id", userID))
	return session, nil
}

// Get возвращает активную сессию или ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*entities.Session, error) {
	if sessionID == "" {
		return nil, entities.ErrSessionNotFound
	}

	var raw []byte
	err := s.retry.Execute(ctx, func() error {
		var getErr error
		raw, getErr = s.client.Get(ctx, sessionKey(sessionID)).Bytes()
		return getErr
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrGetSession, err)
	}

	var session entities.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDecodeSession, err)
	}

	if session.Expired(s.now()) {
		return nil, entities.ErrSessionNotFound
	}
	return &session, nil
}

// Delete закрывает сессию. Отсутствующая сессия дает ErrSessionNotFound.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return entities.ErrSessionNotFound
	}

	removed, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDeleteSession, err)
	}
	if removed == 0 {
		return entities.ErrSessionNotFound
	}

	logger.Log(ctx).Debug(ctx, LogSessionDeleted, zap.String("session_id", sessionID))
	return nil
}

// DeleteByUser закрывает все сессии пользователя. Отсутствие сессий не ошибка.
func (s *SessionStore) DeleteByUser(ctx context.Context, userID string) error {
	if userID == "" {
		return entities.ErrEmptyUserID
	}

	indexKey := userSessionsKey(userID)
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrDeleteByUser, zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteByUser, err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, indexKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrDeleteByUser, zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrDeleteByUser, err)
	}

	logger.Log(ctx).Debug(ctx, LogUserSessionsDeleted,
		zap.String("user_id", userID), zap.Int("sessions", len(ids)))
	return nil
}
