package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/releasekeeper/internal/domain/entities"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func columnWidth(header string, values []string) int {
	width := len(header)
	for _, v := range values {
		width = max(width, len(v))
	}
	return width
}

func printRepositories(w io.Writer, repos []entities.Repository) {
	names := make([]string, 0, len(repos))
	ids := make([]string, 0, len(repos))
	for _, repo := range repos {
		names = append(names, repo.Name)
		ids = append(ids, repo.ID)
	}
	nameW, idW := columnWidth("REPOSITORY", names), columnWidth("ID", ids)

	fmt.Fprintf(w, "%-*s  %-*s  %s\n", nameW, "REPOSITORY", idW, "ID", "DEFAULT BRANCH")
	for _, repo := range repos {
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", nameW, repo.Name, idW, repo.ID, entities.ShortRefName(repo.DefaultBranchRef))
	}
	fmt.Fprintf(w, "Total: %d repositories\n", len(repos))
}

func printProjects(w io.Writer, projects []entities.Project, selectedID string) {
	names := make([]string, 0, len(projects))
	ids := make([]string, 0, len(projects))
	for _, project := range projects {
		names = append(names, project.Name)
		ids = append(ids, project.ID)
	}
	nameW, idW := columnWidth("PROJECT", names), columnWidth("ID", ids)

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", nameW, "PROJECT", idW, "ID", "STATE")
	for _, project := range projects {
		marker := " "
		if project.ID == selectedID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-*s  %-*s  %s\n", marker, nameW, project.Name, idW, project.ID, project.State)
	}
	fmt.Fprintf(w, "Total: %d projects\n", len(projects))
}

func printCandidates(w io.Writer, candidates []entities.ReleaseCandidate) {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Repository.Name)
	}
	nameW := columnWidth("REPOSITORY", names)

	fmt.Fprintf(w, "%-*s  %-7s  %-6s  %-7s  %s\n", nameW, "REPOSITORY", "RELEASE", "TRUNK", "CHANGES", "EXISTING RELEASE")
	for _, c := range candidates {
		trunk := c.Decision.Presence.Trunk()
		if trunk == "" {
			trunk = "-"
		}
		changes := "-"
		if c.Decision.Diff != nil {
			changes = fmt.Sprintf("%d", c.Decision.Diff.TotalChanges())
		}
		existing := "-"
		if c.Decision.ExistingReleaseRef != nil {
			existing = c.Decision.ExistingReleaseRef.ShortName()
		}
		fmt.Fprintf(w, "%-*s  %-7s  %-6s  %-7s  %s\n",
			nameW, c.Repository.Name, yesNo(c.Decision.NeedsRelease), trunk, changes, existing)
	}
}

func printDiff(w io.Writer, base, head string, diff entities.DiffResult) {
	fmt.Fprintf(w, "%s is %d ahead and %d behind %s\n", head, diff.AheadCount, diff.BehindCount, base)
	if diff.IsEmpty() {
		fmt.Fprintln(w, "No changes")
		return
	}
	for changeType, count := range diff.ChangeCounts {
		fmt.Fprintf(w, "  %-10s %d\n", changeType, count)
	}
	for _, change := range diff.Changes {
		fmt.Fprintf(w, "  %-10s %s\n", change.ChangeType, change.Path)
	}
}

func printTags(w io.Writer, tags []entities.Ref) {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.ShortName())
	}
	nameW := columnWidth("TAG", names)

	fmt.Fprintf(w, "%-*s  %-40s  %s\n", nameW, "TAG", "COMMIT", "CREATOR")
	for _, tag := range tags {
		fmt.Fprintf(w, "%-*s  %-40s  %s\n", nameW, tag.ShortName(), tag.ObjectID, tag.Creator.DisplayName)
	}
}

func printEntities(w io.Writer, title string, list []entities.SettingsEntity) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(list) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, e := range list {
		fmt.Fprintf(w, "  - %s (%s)\n", e.DisplayName, e.OriginID)
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func validOutput(format string) error {
	switch strings.ToLower(format) {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use table or json)", format)
	}
}
