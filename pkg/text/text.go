// Package text collects the raw contents of desc records before they are
// parsed. Records come from sync database archives (tar, tar.gz, tar.xz)
// or from a local pacman database directory.
package text

import (
	"iter"
	"slices"
)

// Text is the raw content of one desc record.
type Text string

// String returns the text as a plain string.
func (t Text) String() string {
	return string(t)
}

// Collection is an ordered, append-only list of record texts.
type Collection struct {
	texts []Text
}

// NewCollection creates an empty collection with room for capacity texts.
func NewCollection(capacity int) *Collection {
	return &Collection{texts: make([]Text, 0, max(capacity, 0))}
}

// Insert appends one text.
func (c *Collection) Insert(t Text) {
	c.texts = append(c.texts, t)
}

// Extend appends texts in order.
func (c *Collection) Extend(texts ...Text) {
	c.texts = append(c.texts, texts...)
}

// ExtendSeq appends every text yielded by seq.
func (c *Collection) ExtendSeq(seq iter.Seq[Text]) {
	for t := range seq {
		c.texts = append(c.texts, t)
	}
}

// Len returns the number of texts.
func (c *Collection) Len() int {
	return len(c.texts)
}

// IsEmpty reports whether the collection holds no texts.
func (c *Collection) IsEmpty() bool {
	return len(c.texts) == 0
}

// At returns the i-th text.
func (c *Collection) At(i int) Text {
	return c.texts[i]
}

// All iterates over the texts in insertion order.
func (c *Collection) All() iter.Seq[Text] {
	return slices.Values(c.texts)
}

// Texts returns a copy of the texts.
func (c *Collection) Texts() []Text {
	return slices.Clone(c.texts)
}

// NewCollectionFrom creates a collection holding texts.
func NewCollectionFrom(texts ...Text) *Collection {
	return &Collection{texts: slices.Clone(texts)}
}
