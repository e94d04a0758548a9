package single

import (
	"iter"

	"github.com/cperrin88/archdb/pkg/desc"
)

// AlternativeProviders iterates over every entry whose provides list
// names target. A package that provides its own name is included.
func (db *Database[Q]) AlternativeProviders(target string) iter.Seq[Q] {
	return db.providers(target, false)
}

// AlternativeProvidersExcludingSelf is like AlternativeProviders but skips
// the entry whose own name is target.
func (db *Database[Q]) AlternativeProvidersExcludingSelf(target string) iter.Seq[Q] {
	return db.providers(target, true)
}

func (db *Database[Q]) providers(target string, excludeSelf bool) iter.Seq[Q] {
	return func(yield func(Q) bool) {
		for name, slot := range db.entries {
			if excludeSelf && name == target {
				continue
			}
			if !desc.ProvidesName((*slot).Provides(), target) {
				continue
			}
			if !yield(*slot) {
				return
			}
		}
	}
}
