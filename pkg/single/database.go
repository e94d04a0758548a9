// Package single indexes the records of one repository by package name.
package single

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/version"
)

// ErrNotFound is returned by Lookup when no entry has the requested name.
var ErrNotFound = errors.New("package not found in database")

// Outcome tells what InsertNewer did with the incoming querier.
type Outcome int

const (
	// Added means the name was new.
	Added Outcome = iota
	// Replaced means an older entry was displaced.
	Replaced
	// Rejected means the incoming querier was not newer and was not stored.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Replaced:
		return "replaced"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// InsertNewerResult is returned by InsertNewer. Querier holds the displaced
// entry for Replaced, the incoming querier for Rejected and the zero value
// for Added.
type InsertNewerResult[Q any] struct {
	Outcome Outcome
	Querier Q
}

// Option configures a Database.
type Option func(*options)

type options struct {
	scheme version.Scheme
}

// WithScheme selects the version scheme used by InsertNewer.
func WithScheme(s version.Scheme) Option {
	return func(o *options) {
		if s != nil {
			o.scheme = s
		}
	}
}

// BuildOptions applies opts over the defaults and returns the selected
// version scheme.
func BuildOptions(opts ...Option) version.Scheme {
	o := options{scheme: version.Alpm}
	for _, opt := range opts {
		opt(&o)
	}
	return o.scheme
}

// Database maps package names to queriers. There is at most one entry per
// name. A Database is not safe for concurrent mutation.
type Database[Q desc.Querier] struct {
	entries map[string]*Q
	scheme  version.Scheme
}

// New creates an empty database with room for capacity entries.
func New[Q desc.Querier](capacity int, opts ...Option) *Database[Q] {
	return &Database[Q]{
		entries: make(map[string]*Q, max(capacity, 0)),
		scheme:  BuildOptions(opts...),
	}
}

// Scheme returns the version scheme of the database.
func (db *Database[Q]) Scheme() version.Scheme {
	return db.scheme
}

// Insert stores q under its name, replacing any previous entry. The
// displaced entry is returned with replaced set to true.
func (db *Database[Q]) Insert(q Q) (displaced Q, replaced bool, err error) {
	name, ok := q.Name()
	if !ok {
		return displaced, false, &desc.FieldError[Q]{Querier: q, Err: desc.ErrNoName}
	}

	if slot, exists := db.entries[name]; exists {
		displaced = *slot
		*slot = q
		return displaced, true, nil
	}
	db.entries[name] = &q
	return displaced, false, nil
}

// InsertNewer stores q only when no entry has its name yet or when q has a
// strictly greater version than the stored entry.
func (db *Database[Q]) InsertNewer(q Q) (InsertNewerResult[Q], error) {
	var result InsertNewerResult[Q]

	name, ok := q.Name()
	if !ok {
		return result, &desc.FieldError[Q]{Querier: q, Err: desc.ErrNoName}
	}
	incoming, err := ParseVersion(db.scheme, q)
	if err != nil {
		return result, &desc.FieldError[Q]{Querier: q, Err: err}
	}

	slot, exists := db.entries[name]
	if !exists {
		db.entries[name] = &q
		result.Outcome = Added
		return result, nil
	}

	current, err := ParseVersion(db.scheme, *slot)
	if err != nil {
		return result, &desc.FieldError[Q]{Querier: q, Err: fmt.Errorf("stored entry %s: %w", name, err)}
	}
	if incoming.Compare(current) <= 0 {
		result.Outcome = Rejected
		result.Querier = q
		return result, nil
	}

	result.Outcome = Replaced
	result.Querier = *slot
	*slot = q
	return result, nil
}

// ParseVersion reads and parses the version of q with scheme. The error
// wraps desc.ErrNoVersion or desc.ErrInvalidVersion.
func ParseVersion(scheme version.Scheme, q desc.Querier) (version.Parsed, error) {
	raw, ok := q.Version()
	if !ok {
		return nil, desc.ErrNoVersion
	}
	parsed, err := scheme.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", desc.ErrInvalidVersion, err)
	}
	return parsed, nil
}

// Get returns the entry named name.
func (db *Database[Q]) Get(name string) (Q, bool) {
	slot, ok := db.entries[name]
	if !ok {
		var zero Q
		return zero, false
	}
	return *slot, true
}

// GetMut returns a pointer to the stored entry named name, or nil.
// Writing through the pointer replaces the entry in place.
func (db *Database[Q]) GetMut(name string) *Q {
	return db.entries[name]
}

// Lookup is like Get but reports a missing entry as ErrNotFound.
func (db *Database[Q]) Lookup(name string) (Q, error) {
	q, ok := db.Get(name)
	if !ok {
		return q, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return q, nil
}

// Len returns the number of entries.
func (db *Database[Q]) Len() int {
	return len(db.entries)
}

// IsEmpty reports whether the database has no entries.
func (db *Database[Q]) IsEmpty() bool {
	return len(db.entries) == 0
}

// Entries iterates over (name, querier) pairs in unspecified order.
func (db *Database[Q]) Entries() iter.Seq2[string, Q] {
	return func(yield func(string, Q) bool) {
		for name, slot := range db.entries {
			if !yield(name, *slot) {
				return
			}
		}
	}
}

// Names iterates over the package names in unspecified order.
func (db *Database[Q]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range db.entries {
			if !yield(name) {
				return
			}
		}
	}
}

// Queriers iterates over the stored queriers in unspecified order.
func (db *Database[Q]) Queriers() iter.Seq[Q] {
	return func(yield func(Q) bool) {
		for _, slot := range db.entries {
			if !yield(*slot) {
				return
			}
		}
	}
}

// Extend inserts every querier in order. It stops at the first error and
// keeps what was inserted before it.
func (db *Database[Q]) Extend(qs ...Q) error {
	for _, q := range qs {
		if _, _, err := db.Insert(q); err != nil {
			return err
		}
	}
	return nil
}

// ExtendNewer is like Extend but uses InsertNewer.
func (db *Database[Q]) ExtendNewer(qs ...Q) error {
	for _, q := range qs {
		if _, err := db.InsertNewer(q); err != nil {
			return err
		}
	}
	return nil
}

// FromQueriers builds a database with Insert semantics.
func FromQueriers[Q desc.Querier](qs []Q, opts ...Option) (*Database[Q], error) {
	db := New[Q](len(qs), opts...)
	if err := db.Extend(qs...); err != nil {
		return nil, err
	}
	return db, nil
}

// FromNewerQueriers builds a database with InsertNewer semantics.
func FromNewerQueriers[Q desc.Querier](qs []Q, opts ...Option) (*Database[Q], error) {
	db := New[Q](len(qs), opts...)
	if err := db.ExtendNewer(qs...); err != nil {
		return nil, err
	}
	return db, nil
}
