package entities

import "time"

// User - зарегистрированный пользователь. Password содержит bcrypt-хеш и не сериализуется в ответы.
type User struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"user_name"`
	Password  string    `json:"-"`
	Mobile    string    `json:"user_mobile"`
	AddedDate time.Time `json:"user_added_date"`
}

// Validate проверяет обязательные поля.
func (u *User) Validate() error {
	if u.ID == "" {
		return ErrEmptyUserID
	}
	return nil
}
