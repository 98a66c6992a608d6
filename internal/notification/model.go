package notification

import "time"

// Notification represents an in-app notification
type Notification struct {
	ID                int64     `json:"id"`
	RecipientID       int64     `json:"recipient_id"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"is_read"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"` // e.g. "TRIP", "EXPENSE"
	RelatedEntityID   *int64    `json:"related_entity_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
