package text

import (
	"context"
	"io"
	"iter"

	"github.com/cperrin88/archdb/pkg/attached"
)

// MultiCollection holds texts grouped by the repository they came from.
// Groups keep their insertion order; the same repository may appear in
// more than one group.
type MultiCollection struct {
	groups []attached.Attached[*Collection, string]
}

// NewMultiCollection creates an empty collection with room for capacity groups.
func NewMultiCollection(capacity int) *MultiCollection {
	return &MultiCollection{groups: make([]attached.Attached[*Collection, string], 0, max(capacity, 0))}
}

// Insert appends a whole collection as a group of repository.
func (m *MultiCollection) Insert(repository string, c *Collection) {
	m.groups = append(m.groups, attached.New(c, repository))
}

// InsertText appends t to the last group when that group belongs to
// repository, and opens a new group otherwise.
func (m *MultiCollection) InsertText(repository string, t Text) {
	if n := len(m.groups); n > 0 && m.groups[n-1].Attachment() == repository {
		m.groups[n-1].Main().Insert(t)
		return
	}
	c := NewCollection(1)
	c.Insert(t)
	m.Insert(repository, c)
}

// Extend appends repository-tagged texts. Consecutive texts of the same
// repository end up in the same group.
func (m *MultiCollection) Extend(pairs ...attached.Attached[Text, string]) {
	for _, p := range pairs {
		m.InsertText(p.Attachment(), p.Main())
	}
}

// ExtendFromArchive detects the format of data and adds its desc entries
// as a new group of repository. On error nothing is added.
func (m *MultiCollection) ExtendFromArchive(ctx context.Context, repository string, data []byte) error {
	c := NewCollection(0)
	if err := c.ExtendFromArchive(ctx, data); err != nil {
		return err
	}
	m.insertNonEmpty(repository, c)
	return nil
}

// ExtendFromTar adds the desc entries of a tar stream as a new group.
func (m *MultiCollection) ExtendFromTar(ctx context.Context, repository string, stream io.Reader) error {
	c := NewCollection(0)
	if err := c.ExtendFromTar(ctx, stream); err != nil {
		return err
	}
	m.insertNonEmpty(repository, c)
	return nil
}

// ExtendFromGzip adds the desc entries of a tar.gz stream as a new group.
func (m *MultiCollection) ExtendFromGzip(ctx context.Context, repository string, stream io.Reader) error {
	c := NewCollection(0)
	if err := c.ExtendFromGzip(ctx, stream); err != nil {
		return err
	}
	m.insertNonEmpty(repository, c)
	return nil
}

// ExtendFromXz adds the desc entries of a tar.xz stream as a new group.
func (m *MultiCollection) ExtendFromXz(ctx context.Context, repository string, stream io.Reader) error {
	c := NewCollection(0)
	if err := c.ExtendFromXz(ctx, stream); err != nil {
		return err
	}
	m.insertNonEmpty(repository, c)
	return nil
}

// insertNonEmpty adds c as a group unless it is empty. The ExtendFrom
// methods only call it after a complete read, so a failed archive adds no
// group at all.
func (m *MultiCollection) insertNonEmpty(repository string, c *Collection) {
	if !c.IsEmpty() {
		m.Insert(repository, c)
	}
}

// Len returns the number of groups.
func (m *MultiCollection) Len() int {
	return len(m.groups)
}

// IsEmpty reports whether there are no groups.
func (m *MultiCollection) IsEmpty() bool {
	return len(m.groups) == 0
}

// TextCount returns the number of texts across all groups.
func (m *MultiCollection) TextCount() int {
	n := 0
	for _, g := range m.groups {
		n += g.Main().Len()
	}
	return n
}

// Groups iterates over (repository, collection) pairs in insertion order.
func (m *MultiCollection) Groups() iter.Seq2[string, *Collection] {
	return func(yield func(string, *Collection) bool) {
		for _, g := range m.groups {
			if !yield(g.Attachment(), g.Main()) {
				return
			}
		}
	}
}

// All iterates over every text together with its repository.
func (m *MultiCollection) All() iter.Seq2[string, Text] {
	return func(yield func(string, Text) bool) {
		for _, g := range m.groups {
			for t := range g.Main().All() {
				if !yield(g.Attachment(), t) {
					return
				}
			}
		}
	}
}
