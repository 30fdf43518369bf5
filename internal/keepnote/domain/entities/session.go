package entities

import "time"

// Session - серверная сессия входа. Отсутствие сессии или пустой UserID означает анонимный запрос.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoggedInUser возвращает идентификатор вошедшего пользователя.
func (s *Session) LoggedInUser() (string, bool) {
	if s == nil || s.UserID == "" {
		return "", false
	}
	return s.UserID, true
}

// Expired сообщает, истекла ли сессия к моменту now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
