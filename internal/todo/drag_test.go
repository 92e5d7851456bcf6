package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rowHeight = 40

func upper(i int) Pointer { return Pointer{Index: i, Offset: 10, Height: rowHeight} }
func lower(i int) Pointer { return Pointer{Index: i, Offset: 30, Height: rowHeight} }

func TestBeginDrag(t *testing.T) {
	s := NewState(letters("A", "B", "C"), "C", "A")

	single, err := BeginDrag(s, "B")
	require.NoError(t, err)
	assert.False(t, single.Multi())

	multi, err := BeginDrag(s, "C")
	require.NoError(t, err)
	assert.True(t, multi.Multi())
	assert.Equal(t, []string{"A", "C"}, multi.Snapshot)

	_, err = BeginDrag(s, "Z")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDrag_HoverSingle(t *testing.T) {
	r := testReducer()
	s := NewState(letters("A", "B", "C", "D"))
	d, err := BeginDrag(s, "A")
	require.NoError(t, err)

	// Over itself: nothing to do.
	_, ok := d.Hover(s, lower(0))
	assert.False(t, ok)

	// Moving down, still in the upper half of B.
	_, ok = d.Hover(s, upper(1))
	assert.False(t, ok)

	a, ok := d.Hover(s, lower(1))
	require.True(t, ok)
	assert.Equal(t, ReorderTodos{Source: 0, Destination: 1}, a)
	s = r.Reduce(s, a)
	assert.Equal(t, []string{"B", "A", "C", "D"}, s.IDs())

	// Redundant tick over the same row resolves A by id and does nothing.
	_, ok = d.Hover(s, lower(1))
	assert.False(t, ok)

	a, ok = d.Hover(s, lower(3))
	require.True(t, ok)
	assert.Equal(t, ReorderTodos{Source: 1, Destination: 3}, a)
	s = r.Reduce(s, a)
	assert.Equal(t, []string{"B", "C", "D", "A"}, s.IDs())

	// Moving up needs the upper half.
	_, ok = d.Hover(s, lower(2))
	assert.False(t, ok)
	a, ok = d.Hover(s, upper(2))
	require.True(t, ok)
	s = r.Reduce(s, a)
	assert.Equal(t, []string{"B", "C", "A", "D"}, s.IDs())

	// Single drags are complete on drop.
	_, ok = d.Drop(s, upper(2))
	assert.False(t, ok)
}

func TestDrag_HoverTracksExternalMoves(t *testing.T) {
	r := testReducer()
	s := NewState(letters("A", "B", "C", "D"))
	d, err := BeginDrag(s, "B")
	require.NoError(t, err)

	// Someone else moves B to the end mid-gesture.
	s = r.Reduce(s, ReorderTodos{Source: 1, Destination: 3})

	a, ok := d.Hover(s, upper(0))
	require.True(t, ok)
	assert.Equal(t, ReorderTodos{Source: 3, Destination: 0}, a)

	s = r.Reduce(s, DeleteTodo{ID: "B"})
	_, ok = d.Hover(s, upper(0))
	assert.False(t, ok)

	_, ok = d.Hover(s, upper(9))
	assert.False(t, ok)
}

func TestDrag_DropMulti(t *testing.T) {
	r := testReducer()
	s := NewState(letters("A", "B", "C", "D"), "B", "D")
	d, err := BeginDrag(s, "D")
	require.NoError(t, err)

	_, ok := d.Hover(s, lower(2))
	assert.False(t, ok, "multi drags only move on drop")

	a, ok := d.Drop(s, upper(2))
	require.True(t, ok)
	assert.Equal(t, BatchReorderTodos{Destination: 2, Direction: Down}, a)
	assert.Equal(t, []string{"A", "B", "D", "C"}, r.Reduce(s, a).IDs())

	a, ok = d.Drop(s, lower(2))
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "B", "D"}, r.Reduce(s, a).IDs())
}

func TestDrag_DropUsesLiveSelection(t *testing.T) {
	r := testReducer()
	s := NewState(letters("A", "B", "C", "D", "E"), "B", "D")
	d, err := BeginDrag(s, "B")
	require.NoError(t, err)

	// Selection grows after the drag started.
	s = r.Reduce(s, SelectTodo{ID: "E"})
	a, ok := d.Drop(s, upper(0))
	require.True(t, ok)
	assert.Equal(t, []string{"B", "D", "E", "A", "C"}, r.Reduce(s, a).IDs())

	// Dragged item was deselected: the drag is void.
	s = r.Reduce(s, DeselectTodo{ID: "B"})
	_, ok = d.Drop(s, upper(0))
	assert.False(t, ok)
}
