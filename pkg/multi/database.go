// Package multi indexes the records of several repositories. Each package
// name maps to a group holding at most one entry per repository, together
// with the parsed version of that entry.
package multi

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/cperrin88/archdb/pkg/attached"
	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/single"
	"github.com/cperrin88/archdb/pkg/version"
)

// ErrNotFound is returned by Lookup when no group has the requested name.
var ErrNotFound = errors.New("package not found in any repository")

// Option configures a Database. It is shared with package single.
type Option = single.Option

// WithScheme selects the version scheme used to parse entry versions.
func WithScheme(s version.Scheme) Option {
	return single.WithScheme(s)
}

// InsertNewerResult is returned by InsertNewer. Querier holds the displaced
// entry for Replaced, the incoming querier for Rejected and the zero value
// for Added.
type InsertNewerResult[Q any] = single.InsertNewerResult[Q]

// Entry is one (name, repository) slot of the database.
type Entry[Q any] struct {
	Name       string
	Repository string
	Querier    Q
	Version    version.Parsed
}

// Database maps package names to groups of per-repository entries.
// Groups are created on first insertion and never removed. A Database is
// not safe for concurrent mutation.
type Database[Q desc.Querier] struct {
	groups map[string]*Group[Q]
	scheme version.Scheme
}

// New creates an empty database with room for capacity names.
func New[Q desc.Querier](capacity int, opts ...Option) *Database[Q] {
	return &Database[Q]{
		groups: make(map[string]*Group[Q], max(capacity, 0)),
		scheme: single.BuildOptions(opts...),
	}
}

// Scheme returns the version scheme of the database.
func (db *Database[Q]) Scheme() version.Scheme {
	return db.scheme
}

// prepare extracts the name and parsed version every insertion needs.
func (db *Database[Q]) prepare(q Q) (string, version.Parsed, error) {
	name, ok := q.Name()
	if !ok {
		return "", nil, &desc.FieldError[Q]{Querier: q, Err: desc.ErrNoName}
	}
	parsed, err := single.ParseVersion(db.scheme, q)
	if err != nil {
		return "", nil, &desc.FieldError[Q]{Querier: q, Err: err}
	}
	return name, parsed, nil
}

func (db *Database[Q]) group(name string) *Group[Q] {
	g, ok := db.groups[name]
	if !ok {
		g = newGroup[Q]()
		db.groups[name] = g
	}
	return g
}

// Insert stores q under its name and repository, replacing any previous
// entry of the same pair. The displaced entry is returned with replaced set
// to true. Entries of other repositories are never touched.
func (db *Database[Q]) Insert(repository string, q Q) (displaced WithVersion[Q], replaced bool, err error) {
	name, parsed, err := db.prepare(q)
	if err != nil {
		return displaced, false, err
	}

	entry := attached.New(q, parsed)
	g := db.group(name)
	if slot, exists := g.entries[repository]; exists {
		displaced = *slot
		*slot = entry
		return displaced, true, nil
	}
	g.entries[repository] = &entry
	return displaced, false, nil
}

// InsertNewer stores q only when its (name, repository) slot is free or
// holds a strictly older version.
func (db *Database[Q]) InsertNewer(repository string, q Q) (InsertNewerResult[Q], error) {
	var result InsertNewerResult[Q]

	name, parsed, err := db.prepare(q)
	if err != nil {
		return result, err
	}

	g := db.group(name)
	slot, exists := g.entries[repository]
	if !exists {
		entry := attached.New(q, parsed)
		g.entries[repository] = &entry
		result.Outcome = single.Added
		return result, nil
	}

	if parsed.Compare(slot.Attachment()) <= 0 {
		result.Outcome = single.Rejected
		result.Querier = q
		return result, nil
	}

	result.Outcome = single.Replaced
	result.Querier = slot.Replace(q)
	slot.ReplaceAttachment(parsed)
	return result, nil
}

// Get returns the group of name.
func (db *Database[Q]) Get(name string) (*Group[Q], bool) {
	g, ok := db.groups[name]
	return g, ok
}

// Lookup is like Get but reports a missing name as ErrNotFound.
func (db *Database[Q]) Lookup(name string) (*Group[Q], error) {
	g, ok := db.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return g, nil
}

// Len returns the number of distinct package names.
func (db *Database[Q]) Len() int {
	return len(db.groups)
}

// IsEmpty reports whether the database has no names.
func (db *Database[Q]) IsEmpty() bool {
	return len(db.groups) == 0
}

// Names iterates over the package names in unspecified order.
func (db *Database[Q]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range db.groups {
			if !yield(name) {
				return
			}
		}
	}
}

// Groups iterates over (name, group) pairs in unspecified order.
func (db *Database[Q]) Groups() iter.Seq2[string, *Group[Q]] {
	return func(yield func(string, *Group[Q]) bool) {
		for name, g := range db.groups {
			if !yield(name, g) {
				return
			}
		}
	}
}

// Entries iterates over every (name, repository) slot. Names come in
// unspecified order; repositories of a name are sorted.
func (db *Database[Q]) Entries() iter.Seq[Entry[Q]] {
	return func(yield func(Entry[Q]) bool) {
		for name, g := range db.groups {
			for repo, e := range g.Entries() {
				entry := Entry[Q]{Name: name, Repository: repo, Querier: e.Main(), Version: e.Attachment()}
				if !yield(entry) {
					return
				}
			}
		}
	}
}

// Queriers iterates over every stored querier.
func (db *Database[Q]) Queriers() iter.Seq[Q] {
	return func(yield func(Q) bool) {
		for e := range db.Entries() {
			if !yield(e.Querier) {
				return
			}
		}
	}
}

// Repositories returns the sorted set of repositories that hold at least
// one entry.
func (db *Database[Q]) Repositories() []string {
	seen := make(map[string]struct{})
	for _, g := range db.groups {
		for repo := range g.entries {
			seen[repo] = struct{}{}
		}
	}
	repos := make([]string, 0, len(seen))
	for repo := range seen {
		repos = append(repos, repo)
	}
	slices.Sort(repos)
	return repos
}

// Extend inserts every (querier, repository) pair in order. It stops at the
// first error and keeps what was inserted before it.
func (db *Database[Q]) Extend(pairs ...WithRepository[Q]) error {
	for _, p := range pairs {
		if _, _, err := db.Insert(p.Attachment(), p.Main()); err != nil {
			return err
		}
	}
	return nil
}

// ExtendNewer is like Extend but uses InsertNewer.
func (db *Database[Q]) ExtendNewer(pairs ...WithRepository[Q]) error {
	for _, p := range pairs {
		if _, err := db.InsertNewer(p.Attachment(), p.Main()); err != nil {
			return err
		}
	}
	return nil
}

// FromQueriers builds a database with Insert semantics.
func FromQueriers[Q desc.Querier](pairs []WithRepository[Q], opts ...Option) (*Database[Q], error) {
	db := New[Q](len(pairs), opts...)
	if err := db.Extend(pairs...); err != nil {
		return nil, err
	}
	return db, nil
}

// FromNewerQueriers builds a database with InsertNewer semantics.
func FromNewerQueriers[Q desc.Querier](pairs []WithRepository[Q], opts ...Option) (*Database[Q], error) {
	db := New[Q](len(pairs), opts...)
	if err := db.ExtendNewer(pairs...); err != nil {
		return nil, err
	}
	return db, nil
}
