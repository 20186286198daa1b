package models

import "time"

// Message is a contact-form message sent to the platform.
// Read is nil when the backend does not track read state for the message.
type Message struct {
	ID        int64     `json:"id" db:"id" example:"3"`
	Name      string    `json:"name" db:"name" example:"Léa Martin"`
	Email     string    `json:"email" db:"email" example:"lea.martin@example.com"`
	Subject   string    `json:"subject" db:"subject" example:"Question sur les tarifs"`
	Body      string    `json:"body" db:"body"`
	Read      *bool     `json:"read,omitempty" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsUnread reports whether the message has not been marked as read.
// A message without read tracking counts as unread.
func (m Message) IsUnread() bool {
	return m.Read == nil || !*m.Read
}
