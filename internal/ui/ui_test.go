package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
)

func monoState() todo.State {
	SetTheme("mono")
	return todo.NewState([]model.Item{
		{ID: "a", Text: "Buy milk"},
		{ID: "b", Text: "Walk dog", Completed: true},
		{ID: "c", Text: "Call mom"},
	}, "c")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
}

func TestRowLine(t *testing.T) {
	s := monoState()
	rows := s.Rows()

	assert.Equal(t, " 1.   [ ] Buy milk", RowLine(1, rows[0]))
	assert.Equal(t, " 2.   [x] Walk dog", RowLine(2, rows[1]))
	assert.Equal(t, " 3. * [ ] Call mom", RowLine(3, rows[2]))
}

func TestListLines_Grouped(t *testing.T) {
	s := monoState()

	lines := ListLines(s, true)

	require.Equal(t, "Todos  x 1  - 2  * 1  Total 3", lines[0])
	body := strings.Join(lines[3:], "\n")
	assert.Equal(t, "Pending\n 1.   [ ] Buy milk\n 3. * [ ] Call mom\n\nDone\n 2.   [x] Walk dog", body)
}

func TestListLines_Empty(t *testing.T) {
	SetTheme("mono")

	lines := ListLines(todo.NewState(nil), false)

	assert.Equal(t, "no items", lines[len(lines)-1])
}

func TestPanel(t *testing.T) {
	SetTheme("mono")
	var buf bytes.Buffer

	Panel(&buf, []string{"ab", "x wide"})

	assert.Equal(t, "+--------+\n| ab     |\n| x wide |\n+--------+\n", buf.String())
}

func TestMessages(t *testing.T) {
	SetTheme("mono")
	var buf bytes.Buffer

	OK(&buf, "done")
	Warn(&buf, "careful")
	Fail(&buf, "broken")

	assert.Equal(t, "✔ done\n! careful\n✖ broken\n", buf.String())
}
