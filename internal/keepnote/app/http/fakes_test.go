package http_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"keepnote/internal/keepnote/domain/entities"
	"keepnote/internal/keepnote/ports/api"
)

// crudFake - хранилище в памяти с подсчетом вызовов, общее для категорий, заметок и напоминаний.
type crudFake[T any] struct {
	mu       sync.Mutex
	items    map[int64]T
	calls    int
	failWith error

	id        func(T) int64
	setID     func(T, int64)
	owner     func(T) string
	notFound  error
	duplicate error
}

func (f *crudFake[T]) record() error {
	f.calls++
	return f.failWith
}

func (f *crudFake[T]) Create(_ context.Context, item T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T
	if err := f.record(); err != nil {
		return zero, err
	}
	if _, ok := f.items[f.id(item)]; ok {
		return zero, f.duplicate
	}
	f.items[f.id(item)] = item
	return item, nil
}

func (f *crudFake[T]) Update(_ context.Context, item T, id int64) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T
	if err := f.record(); err != nil {
		return zero, err
	}
	existing, ok := f.items[id]
	if !ok || f.owner(existing) != f.owner(item) {
		return zero, f.notFound
	}
	f.setID(item, id)
	f.items[id] = item
	return item, nil
}

func (f *crudFake[T]) Delete(_ context.Context, id int64, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record(); err != nil {
		return err
	}
	existing, ok := f.items[id]
	if !ok || f.owner(existing) != userID {
		return f.notFound
	}
	delete(f.items, id)
	return nil
}

func (f *crudFake[T]) GetByID(_ context.Context, id int64, userID string) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T
	if err := f.record(); err != nil {
		return zero, err
	}
	existing, ok := f.items[id]
	if !ok || f.owner(existing) != userID {
		return zero, f.notFound
	}
	return existing, nil
}

func (f *crudFake[T]) GetAllByUser(_ context.Context, userID string) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record(); err != nil {
		return nil, err
	}
	var result []T
	for _, item := range f.items {
		if f.owner(item) == userID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return f.id(result[i]) < f.id(result[j]) })
	return result, nil
}

func (f *crudFake[T]) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newCategoryFake() *crudFake[*entities.Category] {
	return &crudFake[*entities.Category]{
		items:     map[int64]*entities.Category{},
		id:        func(c *entities.Category) int64 { return c.ID },
		setID:     func(c *entities.Category, id int64) { c.ID = id },
		owner:     func(c *entities.Category) string { return c.CreatedBy },
		notFound:  entities.ErrCategoryNotFound,
		duplicate: entities.ErrCategoryAlreadyExists,
	}
}

func newNoteFake() *crudFake[*entities.Note] {
	return &crudFake[*entities.Note]{
		items:     map[int64]*entities.Note{},
		id:        func(n *entities.Note) int64 { return n.ID },
		setID:     func(n *entities.Note, id int64) { n.ID = id },
		owner:     func(n *entities.Note) string { return n.CreatedBy },
		notFound:  entities.ErrNoteNotFound,
		duplicate: entities.ErrNoteAlreadyExists,
	}
}

func newReminderFake() *crudFake[*entities.Reminder] {
	return &crudFake[*entities.Reminder]{
		items:     map[int64]*entities.Reminder{},
		id:        func(r *entities.Reminder) int64 { return r.ID },
		setID:     func(r *entities.Reminder, id int64) { r.ID = id },
		owner:     func(r *entities.Reminder) string { return r.CreatedBy },
		notFound:  entities.ErrReminderNotFound,
		duplicate: entities.ErrReminderAlreadyExists,
	}
}

// userFake хранит пользователей и пароли в открытом виде.
type userFake struct {
	mu        sync.Mutex
	users     map[string]*entities.User
	passwords map[string]string
	calls     int

	// onDelete закрывает сессии удаленного пользователя.
	onDelete func(userID string)
}

func newUserFake() *userFake {
	return &userFake{users: map[string]*entities.User{}, passwords: map[string]string{}}
}

func (f *userFake) Register(_ context.Context, user *entities.User, password string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if _, ok := f.users[user.ID]; ok {
		return nil, entities.ErrUserAlreadyExists
	}
	f.users[user.ID] = user
	f.passwords[user.ID] = password
	return user, nil
}

func (f *userFake) Update(_ context.Context, user *entities.User, password string, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if _, ok := f.users[id]; !ok {
		return nil, entities.ErrUserNotFound
	}
	user.ID = id
	f.users[id] = user
	if password != "" {
		f.passwords[id] = password
	}
	return user, nil
}

func (f *userFake) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	f.calls++
	_, ok := f.users[id]
	delete(f.users, id)
	onDelete := f.onDelete
	f.mu.Unlock()

	if !ok {
		return entities.ErrUserNotFound
	}
	if onDelete != nil {
		onDelete(id)
	}
	return nil
}

func (f *userFake) GetByID(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	user, ok := f.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}

func (f *userFake) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// authFake выдает токены вида token-N и хранит сессии в памяти.
type authFake struct {
	mu        sync.Mutex
	users     *userFake
	sessions  map[string]*entities.Session
	issued    int
	calls     int
	logoutErr error
}

var errResolveFailed = errors.New("session store unavailable")

func newAuthFake(users *userFake) *authFake {
	return &authFake{users: users, sessions: map[string]*entities.Session{}}
}

func (f *authFake) ValidateUser(_ context.Context, userID, password string) (*entities.User, error) {
	f.users.mu.Lock()
	defer f.users.mu.Unlock()

	user, ok := f.users.users[userID]
	if !ok || f.users.passwords[userID] != password {
		return nil, entities.ErrInvalidCredentials
	}
	return user, nil
}

func (f *authFake) Login(ctx context.Context, userID, password string) (*api.LoginResult, error) {
	user, err := f.ValidateUser(ctx, userID, password)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.issued++
	token := fmt.Sprintf("token-%d", f.issued)
	session := &entities.Session{
		ID:        fmt.Sprintf("sid-%d", f.issued),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessions[token] = session
	return &api.LoginResult{User: user, Session: session, Token: token}, nil
}

func (f *authFake) Logout(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	for token, session := range f.sessions {
		if session.ID == sessionID {
			delete(f.sessions, token)
			return nil
		}
	}
	return entities.ErrSessionNotFound
}

func (f *authFake) Resolve(_ context.Context, token string) (*entities.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if token == "broken-store" {
		return nil, errResolveFailed
	}
	session, ok := f.sessions[token]
	if !ok {
		return nil, entities.ErrUnauthenticated
	}
	return session, nil
}

// sessionFor открывает сессию, минуя Login.
func (f *authFake) sessionFor(userID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.issued++
	token := fmt.Sprintf("token-%d", f.issued)
	f.sessions[token] = &entities.Session{ID: fmt.Sprintf("sid-%d", f.issued), UserID: userID}
	return token
}

// endSessionsOf закрывает все сессии пользователя.
func (f *authFake) endSessionsOf(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for token, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, token)
		}
	}
}
