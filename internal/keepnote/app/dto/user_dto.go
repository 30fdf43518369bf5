// Package dto содержит объекты передачи данных HTTP слоя keepnote.
package dto

import "keepnote/internal/keepnote/domain/entities"

// RegisterRequest содержит данные для регистрации и обновления пользователя.
// Пароль принимается только во входящих запросах и никогда не возвращается.
type RegisterRequest struct {
	ID       string `json:"user_id"`
	Name     string `json:"user_name"`
	Password string `json:"user_password"`
	Mobile   string `json:"user_mobile"`
}

// UpdateUserRequest совпадает по форме с запросом регистрации.
type UpdateUserRequest = RegisterRequest

// ToUser преобразует запрос в сущность без пароля.
func (r *RegisterRequest) ToUser() *entities.User {
	return &entities.User{
		ID:     r.ID,
		Name:   r.Name,
		Mobile: r.Mobile,
	}
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"user_password"`
}
