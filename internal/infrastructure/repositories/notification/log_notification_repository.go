package notification

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// LogNotificationRepository prints notifications through the logger, which is
// the terminal's equivalent of a toast.
type LogNotificationRepository struct{}

var _ repositories.NotificationRepository = (*LogNotificationRepository)(nil)

func NewLogNotificationRepository() *LogNotificationRepository {
	return &LogNotificationRepository{}
}

func (r *LogNotificationRepository) Notify(notification entities.Notification) {
	entry := logger.WithField("notification", true)
	if notification.Level == entities.NotificationError {
		entry.Error(notification.Message)
		return
	}
	entry.Info(notification.Message)
}
