package entities

// Change is a single file-level change between two commits.
type Change struct {
	Path       string
	ChangeType string
}

// DiffResult is the commit-level difference between a base and a target ref.
type DiffResult struct {
	ChangeCounts map[string]int
	Changes      []Change
	AheadCount   int
	BehindCount  int
}

// IsEmpty reports whether the diff carries no change at all.
func (d DiffResult) IsEmpty() bool {
	return len(d.ChangeCounts) == 0 && len(d.Changes) == 0
}

// TotalChanges sums the per-type change counts.
func (d DiffResult) TotalChanges() int {
	total := 0
	for _, count := range d.ChangeCounts {
		total += count
	}
	return total
}
