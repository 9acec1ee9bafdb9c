package repositories

import (
	"context"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

// RepositoryDirectory lists projects and repositories on the host.
type RepositoryDirectory interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	ListRepositories(ctx context.Context, projectID string) ([]entities.Repository, error)
	GetRepository(ctx context.Context, target entities.RepositoryTarget) (entities.Repository, error)
}

// RefReader lists refs. filter is a name prefix relative to "refs/", e.g.
// "heads/" or "tags/"; an empty filter returns every ref.
type RefReader interface {
	ListRefs(ctx context.Context, repo entities.Repository, filter string) ([]entities.Ref, error)
}

// DiffService computes the commit-level difference between two branches.
type DiffService interface {
	Diff(ctx context.Context, repo entities.Repository, baseBranch, targetBranch string) (entities.DiffResult, error)
}

// MergeService drives the host's asynchronous merge operations.
type MergeService interface {
	CreateMerge(ctx context.Context, repo entities.Repository, req entities.MergeRequest) (entities.MergeOperation, error)
	GetMerge(ctx context.Context, repo entities.Repository, operationID int) (entities.MergeOperation, error)
}

// RefWriter submits compare-and-swap ref updates. The host answers with one
// result per request; a rejected update is a result, not an error.
type RefWriter interface {
	UpdateRefs(
		ctx context.Context,
		repo entities.Repository,
		updates []entities.RefUpdateRequest,
	) ([]entities.RefUpdateResult, error)
}

// HostRepository is the full surface of the hosting platform used by releasekeeper.
type HostRepository interface {
	RepositoryDirectory
	RefReader
	DiffService
	MergeService
	RefWriter
}
