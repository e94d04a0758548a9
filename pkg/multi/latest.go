package multi

import (
	"iter"

	"github.com/cperrin88/archdb/pkg/desc"
)

// Latest is a view of a Database that resolves every name to the entry
// with the greatest version. Nothing is cached; each call rescans the
// group.
type Latest[Q desc.Querier] struct {
	db *Database[Q]
}

// Latest returns the latest-version view of db.
func (db *Database[Q]) Latest() *Latest[Q] {
	return &Latest[Q]{db: db}
}

// Get resolves name to its latest entry.
func (l *Latest[Q]) Get(name string) (WithRepository[WithVersion[Q]], bool) {
	g, ok := l.db.groups[name]
	if !ok {
		return WithRepository[WithVersion[Q]]{}, false
	}
	return g.Latest()
}

// Entries iterates over (name, latest entry) pairs in unspecified order.
func (l *Latest[Q]) Entries() iter.Seq2[string, WithRepository[WithVersion[Q]]] {
	return func(yield func(string, WithRepository[WithVersion[Q]]) bool) {
		for name, g := range l.db.groups {
			latest, ok := g.Latest()
			if !ok {
				continue
			}
			if !yield(name, latest) {
				return
			}
		}
	}
}

// Names iterates over the names that resolve to an entry.
func (l *Latest[Q]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range l.Entries() {
			if !yield(name) {
				return
			}
		}
	}
}

// Queriers iterates over the latest querier of every name.
func (l *Latest[Q]) Queriers() iter.Seq[Q] {
	return func(yield func(Q) bool) {
		for _, latest := range l.Entries() {
			if !yield(latest.Main().Main()) {
				return
			}
		}
	}
}
