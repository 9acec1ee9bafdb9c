package azuredevops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
	"github.com/rios0rios0/releasekeeper/internal/domain/repositories"
)

// HostRepository implements repositories.HostRepository over the Azure DevOps
// Git REST API.
type HostRepository struct {
	client *Client
}

var _ repositories.HostRepository = (*HostRepository)(nil)

// NewHostRepository creates the host repository for the configured organization.
func NewHostRepository(settings *entities.Settings) repositories.HostRepository {
	tokens := NewConfigTokenSource(settings.RawToken, settings.Token)
	return &HostRepository{client: NewClient(settings.Organization, tokens)}
}

// NewHostRepositoryWithClient wraps an existing client.
func NewHostRepositoryWithClient(client *Client) *HostRepository {
	return &HostRepository{client: client}
}

func (h *HostRepository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
	continuationToken := ""

	for {
		endpoint := "/_apis/projects?api-version=" + apiVersion
		if continuationToken != "" {
			endpoint += "&continuationToken=" + url.QueryEscape(continuationToken)
		}

		resp, headers, err := h.client.doRequestWithHeaders(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		var result listDTO[projectDTO]
		if err := json.Unmarshal(resp, &result); err != nil {
			return nil, fmt.Errorf("failed to parse projects response: %w", err)
		}

		for _, p := range result.Value {
			projects = append(projects, entities.Project{ID: p.ID, Name: p.Name, State: p.State})
		}

		continuationToken = headers.Get(continuationHeader)
		if continuationToken == "" {
			break
		}
	}

	return projects, nil
}

func (h *HostRepository) ListRepositories(ctx context.Context, projectID string) ([]entities.Repository, error) {
	endpoint := fmt.Sprintf("/%s/_apis/git/repositories?api-version=%s", url.PathEscape(projectID), apiVersion)

	resp, err := h.client.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result listDTO[repositoryDTO]
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to parse repositories response: %w", err)
	}

	repos := make([]entities.Repository, 0, len(result.Value))
	for _, r := range result.Value {
		repos = append(repos, toRepository(r))
	}
	return repos, nil
}

func (h *HostRepository) GetRepository(
	ctx context.Context,
	target entities.RepositoryTarget,
) (entities.Repository, error) {
	endpoint := fmt.Sprintf("/%s/_apis/git/repositories/%s?api-version=%s",
		url.PathEscape(target.Project), url.PathEscape(target.Repository), apiVersion)

	resp, err := h.client.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Repository{}, err
	}

	var repo repositoryDTO
	if err := json.Unmarshal(resp, &repo); err != nil {
		return entities.Repository{}, fmt.Errorf("failed to parse repository response: %w", err)
	}
	return toRepository(repo), nil
}

func (h *HostRepository) ListRefs(
	ctx context.Context,
	repo entities.Repository,
	filter string,
) ([]entities.Ref, error) {
	var refs []entities.Ref
	continuationToken := ""

	for {
		endpoint := h.gitEndpoint(repo, "/refs") + "?api-version=" + apiVersion
		if filter != "" {
			endpoint += "&filter=" + url.QueryEscape(filter)
		}
		if continuationToken != "" {
			endpoint += "&continuationToken=" + url.QueryEscape(continuationToken)
		}

		resp, headers, err := h.client.doRequestWithHeaders(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		var result listDTO[refDTO]
		if err := json.Unmarshal(resp, &result); err != nil {
			return nil, fmt.Errorf("failed to parse refs response: %w", err)
		}

		for _, r := range result.Value {
			refs = append(refs, entities.Ref{
				Name:     r.Name,
				ObjectID: r.ObjectID,
				Creator: entities.Identity{
					ID:          r.Creator.ID,
					DisplayName: r.Creator.DisplayName,
					UniqueName:  r.Creator.UniqueName,
				},
			})
		}

		continuationToken = headers.Get(continuationHeader)
		if continuationToken == "" {
			break
		}
	}

	return refs, nil
}

func (h *HostRepository) Diff(
	ctx context.Context,
	repo entities.Repository,
	baseBranch, targetBranch string,
) (entities.DiffResult, error) {
	query := url.Values{}
	query.Set("baseVersion", entities.ShortRefName(baseBranch))
	query.Set("baseVersionType", "branch")
	query.Set("targetVersion", entities.ShortRefName(targetBranch))
	query.Set("targetVersionType", "branch")
	query.Set("api-version", apiVersion)
	endpoint := h.gitEndpoint(repo, "/diffs/commits") + "?" + query.Encode()

	resp, err := h.client.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.DiffResult{}, err
	}

	var result diffDTO
	if err := json.Unmarshal(resp, &result); err != nil {
		return entities.DiffResult{}, fmt.Errorf("failed to parse diff response: %w", err)
	}

	diff := entities.DiffResult{
		ChangeCounts: result.ChangeCounts,
		AheadCount:   result.AheadCount,
		BehindCount:  result.BehindCount,
	}
	for _, change := range result.Changes {
		diff.Changes = append(diff.Changes, entities.Change{
			Path:       change.Item.Path,
			ChangeType: change.ChangeType,
		})
	}
	return diff, nil
}

func (h *HostRepository) CreateMerge(
	ctx context.Context,
	repo entities.Repository,
	req entities.MergeRequest,
) (entities.MergeOperation, error) {
	endpoint := h.gitEndpoint(repo, "/merges") + "?api-version=" + apiVersion
	body := mergeParametersDTO{Comment: req.Comment, Parents: req.Parents}

	resp, err := h.client.doRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return entities.MergeOperation{}, fmt.Errorf("failed to create merge: %w", err)
	}
	return parseMerge(resp)
}

func (h *HostRepository) GetMerge(
	ctx context.Context,
	repo entities.Repository,
	operationID int,
) (entities.MergeOperation, error) {
	endpoint := h.gitEndpoint(repo, fmt.Sprintf("/merges/%d", operationID)) + "?api-version=" + apiVersion

	resp, err := h.client.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.MergeOperation{}, err
	}
	return parseMerge(resp)
}

func (h *HostRepository) UpdateRefs(
	ctx context.Context,
	repo entities.Repository,
	updates []entities.RefUpdateRequest,
) ([]entities.RefUpdateResult, error) {
	body := make([]refUpdateDTO, 0, len(updates))
	for _, u := range updates {
		body = append(body, refUpdateDTO{
			Name:        u.Name,
			OldObjectID: u.OldObjectID,
			NewObjectID: u.NewObjectID,
			IsLocked:    u.IsLocked,
		})
	}
	endpoint := h.gitEndpoint(repo, "/refs") + "?api-version=" + apiVersion

	resp, err := h.client.doRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to update refs: %w", err)
	}

	var result listDTO[refUpdateResultDTO]
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ref update response: %w", err)
	}

	results := make([]entities.RefUpdateResult, 0, len(result.Value))
	for _, r := range result.Value {
		results = append(results, entities.RefUpdateResult{
			Name:          r.Name,
			Success:       r.Success,
			CustomMessage: r.CustomMessage,
			UpdateStatus:  r.UpdateStatus,
			NewObjectID:   r.NewObjectID,
		})
	}
	return results, nil
}

func (h *HostRepository) gitEndpoint(repo entities.Repository, suffix string) string {
	project := repo.Project.ID
	if project == "" {
		project = repo.Project.Name
	}
	return fmt.Sprintf("/%s/_apis/git/repositories/%s%s", url.PathEscape(project), url.PathEscape(repo.ID), suffix)
}

func toRepository(r repositoryDTO) entities.Repository {
	return entities.Repository{
		ID:               r.ID,
		Name:             r.Name,
		WebURL:           r.WebURL,
		RemoteURL:        r.RemoteURL,
		DefaultBranchRef: r.DefaultBranch,
		Project:          entities.Project{ID: r.Project.ID, Name: r.Project.Name, State: r.Project.State},
	}
}

func parseMerge(resp []byte) (entities.MergeOperation, error) {
	var merge mergeDTO
	if err := json.Unmarshal(resp, &merge); err != nil {
		return entities.MergeOperation{}, fmt.Errorf("failed to parse merge response: %w", err)
	}

	op := entities.MergeOperation{
		OperationID: merge.MergeOperationID,
		Status:      entities.MergeStatus(merge.Status),
	}
	if merge.DetailedStatus != nil {
		op.MergeCommitID = merge.DetailedStatus.MergeCommitID
		op.Conflicts = merge.DetailedStatus.Conflicts
		op.FailureMessage = merge.DetailedStatus.FailureMessage
	}
	return op, nil
}
