package entities

import (
	"sort"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAllowed keeps the repositories whose ID is listed in allowedIDs,
// preserving the input order.
func FilterAllowed(repos []Repository, allowedIDs []string) []Repository {
	return lo.Filter(repos, func(repo Repository, _ int) bool {
		return lo.Contains(allowedIDs, repo.ID)
	})
}

// SortByName returns a copy of repos ordered by name using a case-insensitive
// collation. Repositories sharing a name keep their relative order.
func SortByName(repos []Repository) []Repository {
	return sortByCollatedName(repos, func(repo Repository) string { return repo.Name })
}

// SortProjectsByName orders projects the same way SortByName orders repositories.
func SortProjectsByName(projects []Project) []Project {
	return sortByCollatedName(projects, func(project Project) string { return project.Name })
}

func sortByCollatedName[T any](items []T, name func(T) string) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		return collator.CompareString(name(sorted[i]), name(sorted[j])) < 0
	})

	return sorted
}
