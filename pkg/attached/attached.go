// Package attached provides a generic pairing of a main value with an
// attachment. Databases use it to carry a querier together with its parsed
// version or with the name of the repository it came from.
package attached

// Attached pairs a main value with an attachment.
type Attached[M, A any] struct {
	main       M
	attachment A
}

// New creates a pair from a main value and its attachment.
func New[M, A any](main M, attachment A) Attached[M, A] {
	return Attached[M, A]{main: main, attachment: attachment}
}

// FromTuple is the inverse of Tuple.
func FromTuple[M, A any](main M, attachment A) Attached[M, A] {
	return New(main, attachment)
}

// Main returns the main value.
func (a Attached[M, A]) Main() M {
	return a.main
}

// Attachment returns the attachment.
func (a Attached[M, A]) Attachment() A {
	return a.attachment
}

// MainPtr returns a pointer to the main value held by a.
func (a *Attached[M, A]) MainPtr() *M {
	return &a.main
}

// AttachmentPtr returns a pointer to the attachment held by a.
func (a *Attached[M, A]) AttachmentPtr() *A {
	return &a.attachment
}

// Tuple splits the pair into its two parts.
func (a Attached[M, A]) Tuple() (M, A) {
	return a.main, a.attachment
}

// Replace swaps the main value for m and returns the old one.
func (a *Attached[M, A]) Replace(m M) M {
	old := a.main
	a.main = m
	return old
}

// ReplaceAttachment swaps the attachment for att and returns the old one.
func (a *Attached[M, A]) ReplaceAttachment(att A) A {
	old := a.attachment
	a.attachment = att
	return old
}

// Map transforms the main value and keeps the attachment.
func Map[M, A, N any](a Attached[M, A], fn func(M) N) Attached[N, A] {
	return New(fn(a.main), a.attachment)
}

// MapAttachment transforms the attachment and keeps the main value.
func MapAttachment[M, A, B any](a Attached[M, A], fn func(A) B) Attached[M, B] {
	return New(a.main, fn(a.attachment))
}

// Flatten collapses a main value that is itself a pair, keeping the outer
// attachment together with the inner one.
func Flatten[M, Inner, Outer any](a Attached[Attached[M, Inner], Outer]) Attached[M, Attached[Inner, Outer]] {
	return New(a.main.main, New(a.main.attachment, a.attachment))
}

// Transpose turns a pair whose main value may be absent into an optional pair.
// It reports false when the main value is nil.
func Transpose[M, A any](a Attached[*M, A]) (Attached[M, A], bool) {
	if a.main == nil {
		return Attached[M, A]{}, false
	}
	return New(*a.main, a.attachment), true
}

// AsDeref borrows both parts of a without copying them.
func AsDeref[M, A any](a *Attached[M, A]) Attached[*M, *A] {
	return New(&a.main, &a.attachment)
}

// Deref copies the values behind a borrowed pair.
func Deref[M, A any](a Attached[*M, *A]) Attached[M, A] {
	return New(*a.main, *a.attachment)
}
