package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
)

func newTestModel(t *testing.T, selected ...string) (modelTUI, *todo.Store) {
	t.Helper()
	items := []model.Item{
		{ID: "A", Text: "alpha"},
		{ID: "B", Text: "bravo"},
		{ID: "C", Text: "charlie"},
		{ID: "D", Text: "delta"},
	}
	store := todo.New(items, selected, todo.WithIDFunc(todo.SequentialIDs("n")))
	m := newModel(store, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(modelTUI), store
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace = runes(" ")
)

func press(m modelTUI, msgs ...tea.Msg) modelTUI {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(modelTUI)
	}
	return m
}

func TestToggleCompleteAndSelect(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, keySpace, keyDown, runes("x"))

	st := store.State()
	a, _ := st.Get("A")
	assert.True(t, a.Completed)
	assert.Equal(t, []string{"B"}, st.SelectedIDs())
	assert.Equal(t, st, m.state)
	assert.Equal(t, 1, m.list.Index())
}

func TestMultiDragDropsBeforeTarget(t *testing.T) {
	m, store := newTestModel(t, "B", "D")

	m = press(m, keyDown, keyDown, keyDown, runes("m"))
	require.NotNil(t, m.drag)
	assert.True(t, m.drag.Multi())

	// D's upper half is pointer 6; two steps up is C's upper half.
	m = press(m, keyUp, keyUp)
	assert.Equal(t, todo.Pointer{Index: 2, Offset: 1, Height: rowUnits}, m.pointerAt())
	assert.Equal(t, []string{"A", "B", "C", "D"}, store.State().IDs(), "nothing moves before the drop")

	m = press(m, keyEnter)

	assert.Nil(t, m.drag)
	assert.Equal(t, []string{"A", "B", "D", "C"}, store.State().IDs())
	assert.Equal(t, []string{"B", "D"}, store.State().SelectedIDs())
}

func TestMultiDragDropsAfterTarget(t *testing.T) {
	m, store := newTestModel(t, "B", "D")

	m = press(m, keyDown, runes("m"), keyDown, keyDown, keyDown, keyEnter)

	// Pointer 5 is the lower half of C.
	assert.Equal(t, []string{"A", "C", "B", "D"}, store.State().IDs())
	assert.Nil(t, m.drag)
}

func TestMultiDragOntoSelectionIsRejected(t *testing.T) {
	m, store := newTestModel(t, "B", "C")

	m = press(m, keyDown, keyDown, runes("m"), keyEnter)

	assert.Equal(t, []string{"A", "B", "C", "D"}, store.State().IDs())
	assert.Contains(t, m.status, "own items")
}

func TestSingleDragReordersOnHover(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("m"))
	require.NotNil(t, m.drag)
	assert.False(t, m.drag.Multi())

	m = press(m, keyDown, keyDown)
	assert.Equal(t, []string{"A", "B", "C", "D"}, store.State().IDs(), "upper half of B does not move A yet")

	m = press(m, keyDown)
	assert.Equal(t, []string{"B", "A", "C", "D"}, store.State().IDs())
	assert.Equal(t, 1, m.list.Index())

	m = press(m, keyEnter)
	assert.Nil(t, m.drag)
	assert.Equal(t, []string{"B", "A", "C", "D"}, store.State().IDs())
}

func TestDragCancel(t *testing.T) {
	m, store := newTestModel(t, "A")

	m = press(m, runes("m"), keyDown, keyDown, keyDown, keyEsc)

	assert.Nil(t, m.drag)
	assert.Equal(t, []string{"A", "B", "C", "D"}, store.State().IDs())
}

func TestAddAppendsAndRejectsBlank(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, runes("a"), keyEnter)
	assert.True(t, m.adding)
	assert.Equal(t, "Text cannot be empty", m.inputErr)

	m = press(m, runes("milk"), keyEnter)

	assert.False(t, m.adding)
	assert.Equal(t, []string{"A", "B", "C", "D", "n1"}, store.State().IDs())
	last, _ := store.State().Get("n1")
	assert.Equal(t, "milk", last.Text)
	assert.Equal(t, 4, m.list.Index())
}

func TestEditAndDelete(t *testing.T) {
	m, store := newTestModel(t, "B")

	m = press(m, keyDown, runes("e"))
	require.True(t, m.editing)
	assert.Equal(t, "bravo", m.ti.Value())
	m.ti.SetValue("BRAVO")
	m = press(m, keyEnter)

	b, _ := store.State().Get("B")
	assert.Equal(t, "BRAVO", b.Text)

	m = press(m, runes("d"))
	assert.Equal(t, []string{"A", "C", "D"}, store.State().IDs())
	assert.Empty(t, store.State().SelectedIDs())
	assert.Equal(t, 1, m.list.Index(), "cursor stays in place")
}

func TestEscLeavesInputWithoutChanges(t *testing.T) {
	m, store := newTestModel(t)
	before := store.State()

	m = press(m, runes("a"), runes("zzz"), keyEsc)

	assert.False(t, m.adding)
	assert.Equal(t, before, store.State())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsRowsAndMarks(t *testing.T) {
	m, _ := newTestModel(t, "C")

	out := m.View()

	for _, text := range []string{"alpha", "bravo", "charlie", "delta"} {
		assert.Contains(t, out, text)
	}
	assert.Equal(t, 1, strings.Count(out, markSelected)-1, "one row mark plus the header counter")
}
