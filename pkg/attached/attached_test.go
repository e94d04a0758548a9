package attached

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachedAccessors(t *testing.T) {
	a := New("bash", "core")

	assert.Equal(t, "bash", a.Main())
	assert.Equal(t, "core", a.Attachment())

	main, att := a.Tuple()
	assert.Equal(t, "bash", main)
	assert.Equal(t, "core", att)
	assert.Equal(t, a, FromTuple(main, att))
}

func TestAttachedReplace(t *testing.T) {
	a := New(1, "one")

	old := a.Replace(2)
	assert.Equal(t, 1, old)
	assert.Equal(t, 2, a.Main())

	oldAtt := a.ReplaceAttachment("two")
	assert.Equal(t, "one", oldAtt)
	assert.Equal(t, "two", a.Attachment())

	*a.MainPtr() = 3
	*a.AttachmentPtr() = "three"
	assert.Equal(t, New(3, "three"), a)
}

func TestMap(t *testing.T) {
	a := New(42, "extra")

	mapped := Map(a, strconv.Itoa)
	assert.Equal(t, New("42", "extra"), mapped)

	mappedAtt := MapAttachment(a, func(s string) int { return len(s) })
	assert.Equal(t, New(42, 5), mappedAtt)
}

func TestFlatten(t *testing.T) {
	nested := New(New("bash", "5.2.026-2"), "core")

	flat := Flatten(nested)
	assert.Equal(t, "bash", flat.Main())
	assert.Equal(t, "5.2.026-2", flat.Attachment().Main())
	assert.Equal(t, "core", flat.Attachment().Attachment())
}

func TestTranspose(t *testing.T) {
	value := "bash"

	got, ok := Transpose(New(&value, "core"))
	require.True(t, ok)
	assert.Equal(t, New("bash", "core"), got)

	_, ok = Transpose(New[*string](nil, "core"))
	assert.False(t, ok)
}

func TestAsDerefSharesStorage(t *testing.T) {
	a := New("bash", "core")

	borrowed := AsDeref(&a)
	*borrowed.Main() = "zsh"
	*borrowed.Attachment() = "extra"

	assert.Equal(t, New("zsh", "extra"), a)
	assert.Equal(t, a, Deref(borrowed))
}
