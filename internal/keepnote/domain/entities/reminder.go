package entities

import "time"

// Reminder - напоминание, к которому можно привязать заметку.
type Reminder struct {
	ID           int64     `json:"reminder_id"`
	Name         string    `json:"reminder_name"`
	Description  string    `json:"reminder_description"`
	Type         string    `json:"reminder_type"`
	CreationDate time.Time `json:"reminder_creation_date"`
	CreatedBy    string    `json:"reminder_created_by"`
}

// Stamp проставляет автора и время создания.
func (r *Reminder) Stamp(userID string, now time.Time) {
	r.CreatedBy = userID
	r.CreationDate = now
}
