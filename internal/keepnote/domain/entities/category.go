package entities

import "time"

// Category группирует заметки пользователя.
type Category struct {
	ID           int64     `json:"category_id"`
	Name         string    `json:"category_name"`
	Description  string    `json:"category_description"`
	CreationDate time.Time `json:"category_creation_date"`
	CreatedBy    string    `json:"category_created_by"`
}

// Stamp проставляет автора и время создания.
func (c *Category) Stamp(userID string, now time.Time) {
	c.CreatedBy = userID
	c.CreationDate = now
}
