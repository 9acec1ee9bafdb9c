//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// SpyNotificationRepository records every notification.
type SpyNotificationRepository struct {
	mu            sync.Mutex
	Notifications []entities.Notification
}

var _ repositories.NotificationRepository = (*SpyNotificationRepository)(nil)

func (s *SpyNotificationRepository) Notify(notification entities.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notifications = append(s.Notifications, notification)
}

// Messages returns the recorded messages in order.
func (s *SpyNotificationRepository) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]string, 0, len(s.Notifications))
	for _, n := range s.Notifications {
		messages = append(messages, n.Message)
	}
	return messages
}

// StubRemoteRepository returns a fixed origin.
type StubRemoteRepository struct {
	Info  entities.RemoteInfo
	Err   error
	Paths []string
}

var _ repositories.RemoteRepository = (*StubRemoteRepository)(nil)

func (s *StubRemoteRepository) DetectOrigin(path string) (entities.RemoteInfo, error) {
	s.Paths = append(s.Paths, path)
	return s.Info, s.Err
}
