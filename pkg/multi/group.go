package multi

import (
	"iter"
	"slices"

	"github.com/cperrin88/archdb/pkg/attached"
	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/version"
)

// WithVersion pairs a querier with its parsed version.
type WithVersion[Q any] = attached.Attached[Q, version.Parsed]

// WithRepository pairs a value with the name of its repository.
type WithRepository[T any] = attached.Attached[T, string]

// Group holds the same-name packages of different repositories.
type Group[Q desc.Querier] struct {
	entries map[string]*WithVersion[Q]
}

func newGroup[Q desc.Querier]() *Group[Q] {
	return &Group[Q]{entries: make(map[string]*WithVersion[Q], 1)}
}

// Get returns the entry of repository.
func (g *Group[Q]) Get(repository string) (WithVersion[Q], bool) {
	slot, ok := g.entries[repository]
	if !ok {
		return WithVersion[Q]{}, false
	}
	return *slot, true
}

// GetMut returns a pointer to the stored entry of repository, or nil.
func (g *Group[Q]) GetMut(repository string) *WithVersion[Q] {
	return g.entries[repository]
}

// Len returns the number of repositories in the group.
func (g *Group[Q]) Len() int {
	return len(g.entries)
}

// Repositories returns the repository names in ascending order.
func (g *Group[Q]) Repositories() []string {
	names := make([]string, 0, len(g.entries))
	for name := range g.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Entries iterates over (repository, entry) pairs ordered by repository.
func (g *Group[Q]) Entries() iter.Seq2[string, WithVersion[Q]] {
	return func(yield func(string, WithVersion[Q]) bool) {
		for _, repo := range g.Repositories() {
			if !yield(repo, *g.entries[repo]) {
				return
			}
		}
	}
}

// Latest returns the entry with the greatest version. When versions are
// equal the repository that sorts first wins. An empty group has no latest
// entry.
func (g *Group[Q]) Latest() (WithRepository[WithVersion[Q]], bool) {
	var (
		best     *WithVersion[Q]
		bestRepo string
	)
	for _, repo := range g.Repositories() {
		slot := g.entries[repo]
		if best == nil || slot.Attachment().Compare(best.Attachment()) > 0 {
			best, bestRepo = slot, repo
		}
	}
	if best == nil {
		return WithRepository[WithVersion[Q]]{}, false
	}
	return attached.New(*best, bestRepo), true
}
