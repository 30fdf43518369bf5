package entities

import "time"

// Note - заметка пользователя с необязательными категорией и напоминанием.
type Note struct {
	ID         int64     `json:"note_id"`
	Title      string    `json:"note_title"`
	Content    string    `json:"note_content"`
	Status     string    `json:"note_status"`
	CreatedAt  time.Time `json:"note_created_at"`
	CategoryID *int64    `json:"category_id,omitempty"`
	ReminderID *int64    `json:"reminder_id,omitempty"`
	CreatedBy  string    `json:"note_created_by"`
}

// Stamp проставляет автора и время создания.
func (n *Note) Stamp(userID string, now time.Time) {
	n.CreatedBy = userID
	n.CreatedAt = now
}
