package models

import "time"

// Notification is an append-only event emitted by every mutating operation.
type Notification struct {
	ID        string    `db:"id" json:"id"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
