package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// ClassifyRepository decides whether repo needs a release. The develop branch
// is diffed against the trunk only when both exist; any change at all means a
// release is needed.
func ClassifyRepository(
	ctx context.Context,
	diffs repositories.DiffService,
	repo entities.Repository,
	refs []entities.Ref,
) (entities.ReleaseDecision, error) {
	presence, release := entities.ClassifyRefs(refs)

	decision := entities.ReleaseDecision{
		RepositoryID:       repo.ID,
		Presence:           presence,
		ExistingReleaseRef: release,
	}
	if !presence.CanCompare() {
		return decision, nil
	}

	diff, err := diffs.Diff(ctx, repo, presence.Trunk(), entities.BranchDevelop)
	if err != nil {
		return entities.ReleaseDecision{}, fmt.Errorf(
			"failed to diff %s..%s in %s: %w", presence.Trunk(), entities.BranchDevelop, repo.Name, err,
		)
	}

	decision.Diff = &diff
	decision.NeedsRelease = !diff.IsEmpty()
	return decision, nil
}
