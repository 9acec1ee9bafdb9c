package repositories

import "github.com/rios0rios0/releasekeeper/internal/domain/entities"

// RemoteRepository inspects a local Git checkout to find its hosted origin.
type RemoteRepository interface {
	DetectOrigin(path string) (entities.RemoteInfo, error)
}
