package ui

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/todo"
)

const maxTextWidth = 80

// Header returns the title line with live counts.
func Header(s todo.State) string {
	t := Current()
	d, p := s.Stats()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		C(t.Title, "Todos"),
		C(t.Success, t.SymDone), d,
		C(t.Pending, t.SymUnchecked), p,
		C(t.Select, t.SymSelected), s.SelectionLen(),
		C(t.Accent, "Total"), s.Len(),
	)
}

// ListLines renders the whole list panel body. With group set, pending
// and done items are listed under separate headings; positions always
// refer to the full list.
func ListLines(s todo.State, group bool) []string {
	t := Current()
	d, _ := s.Stats()
	lines := []string{
		Header(s),
		C(t.Muted, ProgressBar(d, s.Len(), 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(s.Rows())...)
	} else {
		lines = append(lines, rowLines(s.Rows(), nil)...)
	}
	return lines
}

// RowLine renders one row with its 1-based position.
func RowLine(pos int, r todo.Row) string {
	t := Current()
	idx := fmt.Sprintf("%2d.", pos)
	box, color := t.BoxUnchecked, t.Muted
	if r.Completed {
		box, color = t.BoxChecked, t.Success
	}
	mark := " "
	if r.Selected {
		mark = C(t.Select, t.SymSelected)
	}
	text := r.Text
	if runes := []rune(text); len(runes) > maxTextWidth {
		text = string(runes[:maxTextWidth-3]) + "..."
	}
	return fmt.Sprintf("%s %s %s %s", C(dim, idx), mark, C(color, box), text)
}

func rowLines(rows []todo.Row, keep func(todo.Row) bool) []string {
	var out []string
	for i, r := range rows {
		if keep != nil && !keep(r) {
			continue
		}
		out = append(out, RowLine(i+1, r))
	}
	if len(out) == 0 {
		return []string{C(Current().Muted, "no items")}
	}
	return out
}

func groupLines(rows []todo.Row) []string {
	t := Current()
	var lines []string
	lines = append(lines, C(t.Accent, "Pending"))
	lines = append(lines, rowLines(rows, func(r todo.Row) bool { return !r.Completed })...)
	lines = append(lines, "")
	lines = append(lines, C(t.Accent, "Done"))
	lines = append(lines, rowLines(rows, func(r todo.Row) bool { return r.Completed })...)
	return lines
}
