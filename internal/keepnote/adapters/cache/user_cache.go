package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/cache"
	"keepnote/internal/keepnote/ports/repositories"
	"keepnote/internal/keepnote/resilience"
	"keepnote/pkg/logger"
)

const (
	userKeyPrefix = "user:"

	LogCacheHit       = "user cache hit"
	LogCacheDegraded  = "user cache unavailable, reading from repository"
	LogCacheEvictFail = "failed to evict user from cache"
	LogCacheStale     = "user cache entry may be stale, bypassing cache"
	LogCacheEncode    = "failed to encode user for cache"
)

// userRecord - представление пользователя в кэше. Хеш пароля нужен, чтобы обновление профиля без пароля сохранило прежний.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Mobile       string    `json:"mobile"`
	AddedDate    time.Time `json:"added_date"`
}

// UserRepository кэширует чтения пользователей. Ошибки кэша не доходят до
// вызывающего: при недоступном Redis breaker размыкается и чтения идут напрямую в базу.
// Чтения из кэша повторяются, запись в кэш и удаление выполняются один раз.
// Пользователь, чью запись не удалось удалить из кэша, читается из базы, пока удаление не пройдет.
type UserRepository struct {
	next  repositories.UserRepository
	cache cache.Cache
	guard *resilience.ServiceResilience
	ttl   time.Duration

	mu    sync.Mutex
	stale map[string]struct{}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

// NewUserRepository оборачивает репозиторий пользователей кэшем.
func NewUserRepository(next repositories.UserRepository, c cache.Cache, guard *resilience.ServiceResilience, ttl time.Duration) *UserRepository {
	return &UserRepository{
		next:  next,
		cache: c,
		guard: guard,
		ttl:   ttl,
		stale: make(map[string]struct{}),
	}
}

func userKey(id string) string {
	return userKeyPrefix + id
}

// Create создает пользователя без обращения к кэшу.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	return r.next.Create(ctx, user)
}

// FindByID читает пользователя из кэша, при промахе из репозитория.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if r.isStale(id) && !r.evict(ctx, id) {
		logger.Log(ctx).Warn(ctx, LogCacheStale, zap.String("user_id", id))
		return r.next.FindByID(ctx, id)
	}

	raw, err := resilience.Do(ctx, r.guard, func() (string, error) {
		return r.cache.Get(ctx, userKey(id))
	})
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheDegraded, zap.String("user_id", id), zap.Error(err))
	}

	if raw != "" {
		var rec userRecord
		if jsonErr := json.Unmarshal([]byte(raw), &rec); jsonErr == nil {
			logger.Log(ctx).Debug(ctx, LogCacheHit, zap.String("user_id", id))
			return &entities.User{
				ID:        rec.ID,
				Name:      rec.Name,
				Password:  rec.PasswordHash,
				Mobile:    rec.Mobile,
				AddedDate: rec.AddedDate,
			}, nil
		}
	}

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, user)
	return user, nil
}

// Update обновляет пользователя и удаляет его запись из кэша.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	updated, err := r.next.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, user.ID)
	return updated, nil
}

// Delete удаляет пользователя и его запись из кэша.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *UserRepository) store(ctx context.Context, user *entities.User) {
	payload, err := json.Marshal(userRecord{
		ID:           user.ID,
		Name:         user.Name,
		PasswordHash: user.Password,
		Mobile:       user.Mobile,
		AddedDate:    user.AddedDate,
	})
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheEncode, zap.String("user_id", user.ID), zap.Error(err))
		return
	}

	_ = r.guard.Breaker().Execute(ctx, func() error {
		return r.cache.Set(ctx, userKey(user.ID), string(payload), r.ttl)
	})
}

// evict удаляет запись из кэша. При ошибке пользователь помечается устаревшим.
func (r *UserRepository) evict(ctx context.Context, id string) bool {
	err := r.guard.Breaker().Execute(ctx, func() error {
		return r.cache.Delete(ctx, userKey(id))
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheEvictFail, zap.String("user_id", id), zap.Error(err))
		r.stale[id] = struct{}{}
		return false
	}
	delete(r.stale, id)
	return true
}

func (r *UserRepository) isStale(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stale[id]
	return ok
}
