package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// SortTagsDescending orders tag refs newest first. Valid semantic versions are
// compared as such; anything else falls back to string order.
func SortTagsDescending(tags []Ref) {
	sort.SliceStable(tags, func(i, j int) bool {
		return newerVersion(tags[i].ShortName(), tags[j].ShortName())
	})
}

// newerVersion reports whether a sorts before b in newest-first order. Two
// valid semantic versions are compared as such; equal versions and anything
// else fall back to string order.
func newerVersion(a, b string) bool {
	v1, v2 := normalizeVersion(a), normalizeVersion(b)
	if semver.IsValid(v1) && semver.IsValid(v2) {
		if cmp := semver.Compare(v1, v2); cmp != 0 {
			return cmp > 0
		}
	}
	return a > b
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
