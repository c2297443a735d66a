package manifest

import (
	"sort"
	"strings"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
)

// ExclusionSet is a set of directory names. A path is excluded when any of
// its segments equals a member exactly.
type ExclusionSet map[string]struct{}

// DefaultExclusions lists directories that hold vendored dependencies, build
// output or VCS metadata.
var DefaultExclusions = NewExclusionSet(
	"node_modules",
	".git",
	"dist",
	"build",
	"__pycache__",
	"coverage",
	".next",
	"out",
)

// NewExclusionSet builds a set from names.
func NewExclusionSet(names ...string) ExclusionSet {
	s := make(ExclusionSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Excluded reports whether any slash-separated segment of p is in the set,
// regardless of its position or the depth of p.
func (s ExclusionSet) Excluded(p string) bool {
	if len(s) == 0 {
		return false
	}
	for _, part := range strings.Split(p, "/") {
		if _, ok := s[part]; ok {
			return true
		}
	}
	return false
}

// Names returns the members in sorted order.
func (s ExclusionSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every member is a single path segment.
func (s ExclusionSet) Validate() error {
	for n := range s {
		if err := apperrors.ValidateDirName(n); err != nil {
			return err
		}
	}
	return nil
}
