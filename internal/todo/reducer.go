package todo

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/idilsaglam/tada/internal/model"
)

// maxIDAttempts bounds regeneration when the generator returns an id that
// is already in the list.
const maxIDAttempts = 8

// IDFunc generates item ids.
type IDFunc func() string

// NewUUID is the default id generator.
func NewUUID() string { return uuid.NewString() }

// SequentialIDs returns a generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) IDFunc {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, n.Add(1))
	}
}

// Reducer applies actions to states.
type Reducer struct {
	NewID IDFunc
}

// Reduce applies a and discards the error. Rejected actions return s.
func (r Reducer) Reduce(s State, a Action) State {
	next, _ := r.Apply(s, a)
	return next
}

// Apply returns the state that results from a. When a is rejected the
// returned state is s and the error says why.
func (r Reducer) Apply(s State, a Action) (State, error) {
	switch a := a.(type) {
	case AddTodo:
		return r.add(s, a.Text)

	case DeleteTodo:
		i := s.IndexOf(a.ID)
		if i < 0 {
			return s, notFound(a.ID)
		}
		items := make([]model.Item, 0, len(s.items)-1)
		items = append(items, s.items[:i]...)
		items = append(items, s.items[i+1:]...)
		next := s.withItems(items)
		if s.IsSelected(a.ID) {
			sel := s.copySelection()
			delete(sel, a.ID)
			next = next.withSelection(sel)
		}
		return next, nil

	case ToggleComplete:
		return s.updateItem(a.ID, func(it *model.Item) { it.Completed = !it.Completed })

	case EditTodo:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			return s, newError(KindEmptyInput, "empty text")
		}
		return s.updateItem(a.ID, func(it *model.Item) { it.Text = text })

	case ToggleSelected:
		if s.IndexOf(a.ID) < 0 {
			return s, notFound(a.ID)
		}
		sel := s.copySelection()
		if _, ok := sel[a.ID]; ok {
			delete(sel, a.ID)
		} else {
			sel[a.ID] = struct{}{}
		}
		return s.withSelection(sel), nil

	case SelectTodo:
		if s.IndexOf(a.ID) < 0 {
			return s, notFound(a.ID)
		}
		if s.IsSelected(a.ID) {
			return s, nil
		}
		sel := s.copySelection()
		sel[a.ID] = struct{}{}
		return s.withSelection(sel), nil

	case DeselectTodo:
		if !s.IsSelected(a.ID) {
			if s.IndexOf(a.ID) < 0 {
				return s, notFound(a.ID)
			}
			return s, nil
		}
		sel := s.copySelection()
		delete(sel, a.ID)
		return s.withSelection(sel), nil

	case ReorderTodos:
		n := len(s.items)
		if a.Source < 0 || a.Source >= n {
			return s, indexOutOfRange("source", a.Source, n)
		}
		if a.Destination < 0 || a.Destination >= n {
			return s, indexOutOfRange("destination", a.Destination, n)
		}
		if a.Source == a.Destination {
			return s, nil
		}
		return s.withItems(moveOne(s.items, a.Source, a.Destination)), nil

	case BatchReorderTodos:
		items, err := BatchReorder(s, a.Destination, a.Direction)
		if err != nil {
			return s, err
		}
		return s.withItems(items), nil
	}
	return s, newError(KindUnknownAction, "unsupported action %T", a)
}

func (r Reducer) add(s State, text string) (State, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, newError(KindEmptyInput, "empty text")
	}
	id, err := r.freshID(s)
	if err != nil {
		return s, err
	}
	items := make([]model.Item, 0, len(s.items)+1)
	items = append(items, s.items...)
	items = append(items, model.Item{ID: id, Text: text})
	return s.withItems(items), nil
}

func (r Reducer) freshID(s State) (string, error) {
	gen := r.NewID
	if gen == nil {
		gen = NewUUID
	}
	for range maxIDAttempts {
		id := gen()
		if id != "" && s.IndexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("id generator returned %d unusable ids in a row", maxIDAttempts)
}

func (s State) updateItem(id string, fn func(*model.Item)) (State, error) {
	i := s.IndexOf(id)
	if i < 0 {
		return s, notFound(id)
	}
	items := append([]model.Item(nil), s.items...)
	fn(&items[i])
	return s.withItems(items), nil
}
