package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/releasekeeper/internal/infrastructure/repositories"
)

// ScanReleases is the interface for the release-need scan across a project.
type ScanReleases interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) (*ScanReport, error)
}

// ScanOptions holds runtime options for a single scan.
type ScanOptions struct {
	Selection   RepositorySelection
	Concurrency int // overrides settings.Scan.Concurrency when positive
}

// ScanFailure records a repository that could not be classified.
type ScanFailure struct {
	Repository entities.Repository
	Err        error
}

// ScanReport is the joined result of a scan. Candidates and failures follow
// the order of the scanned repositories, which is by name.
type ScanReport struct {
	Candidates []entities.ReleaseCandidate
	Failures   []ScanFailure
}

// NeedingRelease returns only the candidates whose decision asks for a release.
func (r *ScanReport) NeedingRelease() []entities.ReleaseCandidate {
	var needed []entities.ReleaseCandidate
	for _, candidate := range r.Candidates {
		if candidate.Decision.NeedsRelease {
			needed = append(needed, candidate)
		}
	}
	return needed
}

// ScanReleasesCommand classifies every selected repository concurrently.
type ScanReleasesCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	settingsRegistry *infraRepos.SettingsRegistry
}

func NewScanReleasesCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	settingsRegistry *infraRepos.SettingsRegistry,
) *ScanReleasesCommand {
	return &ScanReleasesCommand{
		providerRegistry: providerRegistry,
		settingsRegistry: settingsRegistry,
	}
}

func (it *ScanReleasesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) (*ScanReport, error) {
	host, err := openHost(it.providerRegistry, settings)
	if err != nil {
		return nil, err
	}

	store, err := it.settingsRegistry.Get(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	repos, err := selectRepositories(ctx, host, store, settings, opts.Selection)
	if err != nil {
		return nil, err
	}

	limit := settings.Scan.Concurrency
	if opts.Concurrency > 0 {
		limit = opts.Concurrency
	}

	logger.Infof("Scanning %d repositories (concurrency %d)...", len(repos), limit)
	report := scanRepositories(ctx, host, repos, limit)
	logger.Infof(
		"Scan complete: %d classified, %d need a release, %d errors",
		len(report.Candidates), len(report.NeedingRelease()), len(report.Failures),
	)

	return report, nil
}

// scanRepositories fans out over repos with at most limit classifications in
// flight. A failing repository is recorded and never stops the others. Each
// worker owns one result slot, so the report keeps the order of repos.
func scanRepositories(
	ctx context.Context,
	host repositories.HostRepository,
	repos []entities.Repository,
	limit int,
) *ScanReport {
	type slot struct {
		decision entities.ReleaseDecision
		err      error
	}
	slots := make([]slot, len(repos))

	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, repo := range repos {
		group.Go(func() error {
			decision, err := classifyOne(ctx, host, repo)
			if err != nil {
				logger.Errorf("Skipping %s: %v", repo.Name, err)
				slots[i].err = err
				return nil
			}

			logger.Debugf("%s: needs release = %t", repo.Name, decision.NeedsRelease)
			slots[i].decision = decision
			return nil
		})
	}
	_ = group.Wait() // workers never return an error

	report := &ScanReport{}
	for i, result := range slots {
		if result.err != nil {
			report.Failures = append(report.Failures, ScanFailure{Repository: repos[i], Err: result.err})
			continue
		}
		report.Candidates = append(report.Candidates, entities.ReleaseCandidate{
			Repository: repos[i],
			Decision:   result.decision,
		})
	}
	return report
}

func classifyOne(
	ctx context.Context,
	host repositories.HostRepository,
	repo entities.Repository,
) (entities.ReleaseDecision, error) {
	refs, err := host.ListRefs(ctx, repo, "heads/")
	if err != nil {
		return entities.ReleaseDecision{}, fmt.Errorf("failed to list refs: %w", err)
	}
	return ClassifyRepository(ctx, host, repo, refs)
}
