package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageAttachments_AppendPreservesOrder(t *testing.T) {
	var m ImageAttachments
	images := m.Append(nil, "u1")
	images = m.Append(images, "u2")
	images = m.Append(images, "u1")

	assert.Equal(t, []string{"u1", "u2", "u1"}, images)
}

func TestImageAttachments_AppendDoesNotMutateInput(t *testing.T) {
	var m ImageAttachments
	in := make([]string, 1, 4)
	in[0] = "a"

	out := m.Append(in, "b")
	out[0] = "changed"

	assert.Equal(t, []string{"a"}, in)
	assert.Empty(t, in[:2][1], "spare capacity must not be written")
}

func TestImageAttachments_AppendThenRemoveRoundTrip(t *testing.T) {
	var m ImageAttachments
	images := m.RemoveAt(m.Append([]string{}, "https://cdn/x.jpg"), 0)

	assert.Equal(t, []string{}, images)
}

func TestImageAttachments_RemoveAt(t *testing.T) {
	var m ImageAttachments
	in := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "c"}, m.RemoveAt(in, 1))
	assert.Equal(t, []string{"b", "c"}, m.RemoveAt(in, 0))
	assert.Equal(t, []string{"a", "b"}, m.RemoveAt(in, 2))
	assert.Equal(t, []string{"a", "b", "c"}, in)
}

func TestImageAttachments_RemoveAtOutOfRangeIsNoop(t *testing.T) {
	var m ImageAttachments
	in := []string{"a", "b"}

	for _, idx := range []int{-1, 2, 99} {
		assert.Equal(t, []string{"a", "b"}, m.RemoveAt(in, idx), "index %d", idx)
	}
	assert.Equal(t, []string{}, m.RemoveAt(nil, 0))
}
