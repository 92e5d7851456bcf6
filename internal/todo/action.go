package todo

import "fmt"

// Action is a request to transform the list. The set of actions is closed.
type Action interface {
	fmt.Stringer
	action()
}

type AddTodo struct{ Text string }

type DeleteTodo struct{ ID string }

type ToggleComplete struct{ ID string }

type EditTodo struct {
	ID   string
	Text string
}

type ToggleSelected struct{ ID string }

// SelectTodo adds ID to the selection; selecting twice is a no-op.
type SelectTodo struct{ ID string }

// DeselectTodo removes ID from the selection.
type DeselectTodo struct{ ID string }

// ReorderTodos moves the item at Source so it ends up at Destination.
// Destination is a position in the list after the item was removed.
type ReorderTodos struct {
	Source      int
	Destination int
}

// BatchReorderTodos moves the whole selection next to the item at
// Destination, an index into the list before the move.
type BatchReorderTodos struct {
	Destination int
	Direction   Direction
}

func (AddTodo) action()           {}
func (DeleteTodo) action()        {}
func (ToggleComplete) action()    {}
func (EditTodo) action()          {}
func (ToggleSelected) action()    {}
func (SelectTodo) action()        {}
func (DeselectTodo) action()      {}
func (ReorderTodos) action()      {}
func (BatchReorderTodos) action() {}

func (a AddTodo) String() string        { return fmt.Sprintf("add %q", a.Text) }
func (a DeleteTodo) String() string     { return "delete " + a.ID }
func (a ToggleComplete) String() string { return "toggle-complete " + a.ID }
func (a EditTodo) String() string       { return fmt.Sprintf("edit %s %q", a.ID, a.Text) }
func (a ToggleSelected) String() string { return "toggle-selected " + a.ID }
func (a SelectTodo) String() string     { return "select " + a.ID }
func (a DeselectTodo) String() string   { return "deselect " + a.ID }
func (a ReorderTodos) String() string {
	return fmt.Sprintf("reorder %d->%d", a.Source, a.Destination)
}
func (a BatchReorderTodos) String() string {
	return fmt.Sprintf("batch-reorder %d %s", a.Destination, a.Direction)
}
