package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// UsageError reports a malformed script line.
type UsageError struct {
	Line int
	Msg  string
}

func (e *UsageError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Script runs line-oriented commands against a store. Positions are
// 1-based and resolved against the list as it is when the line runs.
type Script struct {
	Store *todo.Store
	Out   io.Writer
	Err   io.Writer
	Group bool

	line int
}

// Run executes every line of src. Comments start with '#'.
func (s *Script) Run(src io.Reader) error {
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		s.line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.Exec(text); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// Exec runs a single command line.
func (s *Script) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, a := fields[0], fields[1:]

	switch cmd {
	case "ls":
		ui.Panel(s.Out, ui.ListLines(s.Store.State(), s.Group))
		return nil

	case "add":
		if len(a) == 0 {
			return s.usage("usage: add <text...>")
		}
		return s.apply(todo.AddTodo{Text: strings.Join(a, " ")})

	case "rm", "done", "select", "unselect", "toggle":
		if len(a) != 1 {
			return s.usage(fmt.Sprintf("usage: %s <position>", cmd))
		}
		id, err := s.idAt(cmd, a[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "rm":
			return s.apply(todo.DeleteTodo{ID: id})
		case "done":
			return s.apply(todo.ToggleComplete{ID: id})
		case "select":
			return s.apply(todo.SelectTodo{ID: id})
		case "unselect":
			return s.apply(todo.DeselectTodo{ID: id})
		default:
			return s.apply(todo.ToggleSelected{ID: id})
		}

	case "edit":
		if len(a) < 2 {
			return s.usage("usage: edit <position> <text...>")
		}
		id, err := s.idAt(cmd, a[0])
		if err != nil {
			return err
		}
		return s.apply(todo.EditTodo{ID: id, Text: strings.Join(a[1:], " ")})

	case "move":
		if len(a) != 2 {
			return s.usage("usage: move <from> <to>")
		}
		from, err := s.position(cmd, a[0])
		if err != nil {
			return err
		}
		to, err := s.position(cmd, a[1])
		if err != nil {
			return err
		}
		return s.apply(todo.ReorderTodos{Source: from, Destination: to})

	case "batch":
		if len(a) != 2 {
			return s.usage("usage: batch <position> up|down")
		}
		dest, err := s.position(cmd, a[0])
		if err != nil {
			return err
		}
		dir, err := todo.ParseDirection(a[1])
		if err != nil {
			return s.usage("batch: " + err.Error())
		}
		return s.apply(todo.BatchReorderTodos{Destination: dest, Direction: dir})
	}

	return s.usage("unknown command: " + cmd)
}

func (s *Script) usage(msg string) error {
	return &UsageError{Line: s.line, Msg: msg}
}

// position parses a 1-based position into an index.
func (s *Script) position(cmd, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, s.usage(cmd + ": not a number: " + arg)
	}
	return n - 1, nil
}

// idAt resolves a position to the id currently there. An empty id is
// returned for positions past the end; the store rejects it as not found.
func (s *Script) idAt(cmd, arg string) (string, error) {
	i, err := s.position(cmd, arg)
	if err != nil {
		return "", err
	}
	it, _ := s.Store.State().At(i)
	return it.ID, nil
}

func (s *Script) apply(a todo.Action) error {
	if _, err := s.Store.Dispatch(a); err != nil {
		ui.Warn(s.Err, fmt.Sprintf("line %d: %s: %v", s.line, a, err))
	}
	return nil
}
