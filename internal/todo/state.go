// Package todo holds the list state, the actions that transform it and the
// store that owns the current state.
package todo

import (
	"github.com/idilsaglam/tada/internal/model"
)

// State is an immutable snapshot of the list. Transitions never modify a
// State's backing slice or set; they build new ones.
type State struct {
	items    []model.Item
	selected map[string]struct{}
}

// Row is an item together with its selection flag, as rendered.
type Row struct {
	model.Item
	Selected bool
}

// NewState builds a state from items and the ids to select. Ids that do
// not name an item are dropped so the selection is always a subset.
func NewState(items []model.Item, selected ...string) State {
	s := State{
		items:    append([]model.Item(nil), items...),
		selected: make(map[string]struct{}, len(selected)),
	}
	for _, id := range selected {
		if s.IndexOf(id) >= 0 {
			s.selected[id] = struct{}{}
		}
	}
	return s
}

// Len returns the number of items.
func (s State) Len() int { return len(s.items) }

// Items returns a copy of the ordered items.
func (s State) Items() []model.Item {
	return append([]model.Item(nil), s.items...)
}

// At returns the item at index i.
func (s State) At(i int) (model.Item, bool) {
	if i < 0 || i >= len(s.items) {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Get returns the item with the given id.
func (s State) Get(id string) (model.Item, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// IndexOf returns the current position of id, or -1.
func (s State) IndexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// IDs returns item ids in list order.
func (s State) IDs() []string {
	out := make([]string, len(s.items))
	for i := range s.items {
		out[i] = s.items[i].ID
	}
	return out
}

// IsSelected reports whether id is in the selection set.
func (s State) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectionLen returns the size of the selection set.
func (s State) SelectionLen() int { return len(s.selected) }

// SelectedIDs returns the selected ids in list order.
func (s State) SelectedIDs() []string {
	out := make([]string, 0, len(s.selected))
	for i := range s.items {
		if s.IsSelected(s.items[i].ID) {
			out = append(out, s.items[i].ID)
		}
	}
	return out
}

// Rows returns the items with their derived selection flags.
func (s State) Rows() []Row {
	out := make([]Row, len(s.items))
	for i, it := range s.items {
		out[i] = Row{Item: it, Selected: s.IsSelected(it.ID)}
	}
	return out
}

// Stats counts completed and pending items.
func (s State) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s State) withItems(items []model.Item) State {
	return State{items: items, selected: s.selected}
}

func (s State) withSelection(selected map[string]struct{}) State {
	return State{items: s.items, selected: selected}
}

func (s State) copySelection() map[string]struct{} {
	out := make(map[string]struct{}, len(s.selected)+1)
	for id := range s.selected {
		out[id] = struct{}{}
	}
	return out
}
