//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations without a mock framework.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"
	"sync"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// DiffCall records one Diff invocation.
type DiffCall struct {
	RepositoryID string
	Base         string
	Target       string
}

// SpyHostRepository implements repositories.HostRepository as a configurable spy.
// It is safe for concurrent use, since scans call it from several goroutines.
type SpyHostRepository struct {
	mu sync.Mutex

	// --- ListProjects ---
	Projects        []entities.Project
	ListProjectsErr error

	// --- ListRepositories ---
	Repositories     []entities.Repository
	ListReposErr     error
	ListedProjectIDs []string

	// --- GetRepository ---
	Repository       entities.Repository
	GetRepositoryErr error
	RequestedTargets []entities.RepositoryTarget

	// --- ListRefs ---
	RefsByRepository  map[string][]entities.Ref // repository id -> refs
	ListRefsErrByRepo map[string]error
	ListRefsFilters   []string
	// OnListRefs runs outside the lock while the call counts as in flight.
	OnListRefs  func(repo entities.Repository)
	inFlight    int
	maxInFlight int

	// --- Diff ---
	DiffsByRepository map[string]entities.DiffResult
	DiffErrByRepo     map[string]error
	DiffCalls         []DiffCall

	// --- CreateMerge ---
	CreatedMerge   entities.MergeOperation
	CreateMergeErr error
	MergeRequests  []entities.MergeRequest

	// --- GetMerge ---
	// PollResponses are returned in order; the last one repeats.
	PollResponses []entities.MergeOperation
	PollErr       error
	PollCount     int
	// OnPoll runs after the poll counter is incremented.
	OnPoll func(count int)

	// --- UpdateRefs ---
	// RefUpdateResults, when nil, reports success for every request.
	RefUpdateResults []entities.RefUpdateResult
	UpdateRefsErr    error
	RefUpdates       [][]entities.RefUpdateRequest
}

var _ repositories.HostRepository = (*SpyHostRepository)(nil)

func (s *SpyHostRepository) ListProjects(_ context.Context) ([]entities.Project, error) {
	return s.Projects, s.ListProjectsErr
}

func (s *SpyHostRepository) ListRepositories(_ context.Context, projectID string) ([]entities.Repository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListedProjectIDs = append(s.ListedProjectIDs, projectID)
	return s.Repositories, s.ListReposErr
}

func (s *SpyHostRepository) GetRepository(
	_ context.Context, target entities.RepositoryTarget,
) (entities.Repository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RequestedTargets = append(s.RequestedTargets, target)
	return s.Repository, s.GetRepositoryErr
}

func (s *SpyHostRepository) ListRefs(
	_ context.Context, repo entities.Repository, filter string,
) ([]entities.Ref, error) {
	s.mu.Lock()
	s.ListRefsFilters = append(s.ListRefsFilters, filter)
	s.inFlight++
	s.maxInFlight = max(s.maxInFlight, s.inFlight)
	hook := s.OnListRefs
	s.mu.Unlock()

	if hook != nil {
		hook(repo)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if err := s.ListRefsErrByRepo[repo.ID]; err != nil {
		return nil, err
	}

	var refs []entities.Ref
	for _, ref := range s.RefsByRepository[repo.ID] {
		if strings.HasPrefix(ref.Name, "refs/"+filter) {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// MaxInFlight returns the highest number of ListRefs calls seen running at once.
func (s *SpyHostRepository) MaxInFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}

func (s *SpyHostRepository) Diff(
	_ context.Context, repo entities.Repository, base, target string,
) (entities.DiffResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DiffCalls = append(s.DiffCalls, DiffCall{RepositoryID: repo.ID, Base: base, Target: target})

	if err := s.DiffErrByRepo[repo.ID]; err != nil {
		return entities.DiffResult{}, err
	}
	return s.DiffsByRepository[repo.ID], nil
}

func (s *SpyHostRepository) CreateMerge(
	_ context.Context, _ entities.Repository, req entities.MergeRequest,
) (entities.MergeOperation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MergeRequests = append(s.MergeRequests, req)
	return s.CreatedMerge, s.CreateMergeErr
}

func (s *SpyHostRepository) GetMerge(
	_ context.Context, _ entities.Repository, _ int,
) (entities.MergeOperation, error) {
	s.mu.Lock()
	s.PollCount++
	count := s.PollCount
	hook := s.OnPoll

	var response entities.MergeOperation
	if len(s.PollResponses) > 0 {
		response = s.PollResponses[min(count, len(s.PollResponses))-1]
	}
	err := s.PollErr
	s.mu.Unlock()

	if hook != nil {
		hook(count)
	}
	return response, err
}

func (s *SpyHostRepository) UpdateRefs(
	_ context.Context, _ entities.Repository, updates []entities.RefUpdateRequest,
) ([]entities.RefUpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RefUpdates = append(s.RefUpdates, updates)

	if s.UpdateRefsErr != nil {
		return nil, s.UpdateRefsErr
	}
	if s.RefUpdateResults != nil {
		return s.RefUpdateResults, nil
	}

	results := make([]entities.RefUpdateResult, 0, len(updates))
	for _, u := range updates {
		results = append(results, entities.RefUpdateResult{Name: u.Name, Success: true, NewObjectID: u.NewObjectID})
	}
	return results, nil
}

// Polls returns the number of GetMerge calls so far.
func (s *SpyHostRepository) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.PollCount
}
