package board

import (
	"context"
	"time"

	"jobdesk/internal/common"
	"jobdesk/internal/domain/notification"
)

// Notify appends an unread notification addressed to the account, most
// recent first, and persists the collection.
func (s *Store) Notify(ctx context.Context, userID, message string) (*notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.appendNotification(userID, message)
	if err := s.persistNotifications(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// appendNotification prepends the record without persisting; mutation
// operations batch it with their own snapshot writes. Callers hold the lock.
func (s *Store) appendNotification(userID, message string) *notification.Notification {
	created := notification.Notification{
		ID:        common.NewID(),
		UserID:    userID,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	s.notifications = append([]notification.Notification{created}, s.notifications...)
	return &s.notifications[0]
}

// NotificationsFor returns the notifications addressed to one account, most
// recent first.
func (s *Store) NotificationsFor(userID string) []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notification.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
