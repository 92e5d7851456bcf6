package todo

// Pointer describes where the pointer is during a drag: the row it is
// over, as currently rendered, and its vertical offset inside that row.
type Pointer struct {
	Index  int
	Offset float64
	Height float64
}

// Direction derives the drop direction for p.
func (p Pointer) Direction() Direction {
	return DirectionFromOffset(p.Offset, p.Height)
}

// Drag is an in-progress drag gesture. It never caches positions; every
// call resolves the dragged item by id against the state it is given.
type Drag struct {
	ID string
	// Snapshot is the selection when the drag began. It is kept for display
	// only; the block that moves is always taken from live state.
	Snapshot []string
}

// BeginDrag starts dragging the item id. Dragging a selected item drags
// the whole selection.
func BeginDrag(s State, id string) (Drag, error) {
	if s.IndexOf(id) < 0 {
		return Drag{}, notFound(id)
	}
	d := Drag{ID: id}
	if s.IsSelected(id) {
		d.Snapshot = s.SelectedIDs()
	}
	return d, nil
}

// Multi reports whether the drag carries the selection.
func (d Drag) Multi() bool { return len(d.Snapshot) > 0 }

// Hover returns the reorder to apply for a hover tick, if any. Only single
// drags reorder while hovering.
func (d Drag) Hover(s State, p Pointer) (Action, bool) {
	if d.Multi() {
		return nil, false
	}
	from := s.IndexOf(d.ID)
	if from < 0 || p.Index < 0 || p.Index >= s.Len() || from == p.Index {
		return nil, false
	}
	// Wait until the pointer crosses the middle of the hovered row.
	dir := p.Direction()
	if from < p.Index && dir == Down {
		return nil, false
	}
	if from > p.Index && dir == Up {
		return nil, false
	}
	return ReorderTodos{Source: from, Destination: p.Index}, true
}

// Drop returns the action that completes the drag, if any. Single drags
// are already in place by the time they drop.
func (d Drag) Drop(s State, p Pointer) (Action, bool) {
	if !d.Multi() {
		return nil, false
	}
	if s.IndexOf(d.ID) < 0 || !s.IsSelected(d.ID) {
		return nil, false
	}
	return BatchReorderTodos{Destination: p.Index, Direction: p.Direction()}, true
}
