package repositories

import "github.com/rios0rios0/releasekeeper/internal/domain/entities"

// NotificationRepository surfaces short-lived messages to the user.
type NotificationRepository interface {
	Notify(notification entities.Notification)
}
