package multi

import (
	"iter"

	"github.com/cperrin88/archdb/pkg/desc"
)

// Providers walks a Database looking for entries whose provides list names
// a target. It is a pull iterator: call Next until it returns false, then
// it keeps returning false.
//
// The set of groups is captured when the iterator is created. Mutating the
// database while iterating is not supported.
type Providers[Q desc.Querier] struct {
	target      string
	excludeSelf bool

	// current holds the unvisited entries of the group being scanned. It is
	// nil only when pending is empty too.
	current []Entry[Q]
	pending []pendingGroup[Q]

	item Entry[Q]
}

type pendingGroup[Q desc.Querier] struct {
	name  string
	group *Group[Q]
}

// AlternativeProviders returns an iterator over every (repository, entry)
// whose provides list names target. Packages that provide their own name
// are included.
func (db *Database[Q]) AlternativeProviders(target string) *Providers[Q] {
	return newProviders(db, target, false)
}

// AlternativeProvidersExcludingSelf is like AlternativeProviders but skips
// entries whose own name is target.
func (db *Database[Q]) AlternativeProvidersExcludingSelf(target string) *Providers[Q] {
	return newProviders(db, target, true)
}

func newProviders[Q desc.Querier](db *Database[Q], target string, excludeSelf bool) *Providers[Q] {
	pending := make([]pendingGroup[Q], 0, len(db.groups))
	for name, g := range db.groups {
		pending = append(pending, pendingGroup[Q]{name: name, group: g})
	}

	p := &Providers[Q]{target: target, excludeSelf: excludeSelf, pending: pending}
	p.advanceGroup()
	return p
}

// advanceGroup moves the next pending group into current.
func (p *Providers[Q]) advanceGroup() {
	if len(p.pending) == 0 {
		p.current = nil
		return
	}

	next := p.pending[0]
	p.pending = p.pending[1:]
	p.current = make([]Entry[Q], 0, next.group.Len())
	for repo, e := range next.group.Entries() {
		p.current = append(p.current, Entry[Q]{
			Name:       next.name,
			Repository: repo,
			Querier:    e.Main(),
			Version:    e.Attachment(),
		})
	}
}

// Next advances to the next provider and reports whether there is one.
func (p *Providers[Q]) Next() bool {
	for {
		assertInvariant(p.current != nil || len(p.pending) == 0,
			"current group was emptied before the pending groups")

		if p.current == nil {
			return false
		}

		for len(p.current) > 0 {
			e := p.current[0]
			p.current = p.current[1:]
			if p.excludeSelf && e.Name == p.target {
				continue
			}
			if desc.ProvidesName(e.Querier.Provides(), p.target) {
				p.item = e
				return true
			}
		}

		p.advanceGroup()
	}
}

// Entry returns the provider found by the last successful call to Next.
func (p *Providers[Q]) Entry() Entry[Q] {
	return p.item
}

// Repository returns the repository of the current provider.
func (p *Providers[Q]) Repository() string {
	return p.item.Repository
}

// All drains the iterator as a sequence of (repository, entry) pairs.
func (p *Providers[Q]) All() iter.Seq2[string, Entry[Q]] {
	return func(yield func(string, Entry[Q]) bool) {
		for p.Next() {
			if !yield(p.item.Repository, p.item) {
				return
			}
		}
	}
}
