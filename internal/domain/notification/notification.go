package notification

import "time"

// Notification is an addressed, timestamped message. The collection is
// append-only and no operation marks a notification read.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
