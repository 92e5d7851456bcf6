package todo

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/tada/internal/model"
)

// Store owns the current state and notifies observers after each change.
type Store struct {
	mu        sync.Mutex
	reducer   Reducer
	state     State
	observers map[int]func(State)
	nextObs   int
	log       *logrus.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc sets the id generator used by AddTodo.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) { s.reducer.NewID = fn }
}

// WithLogger sets the logger used for applied and rejected actions.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store seeded with items and the ids to select.
func New(items []model.Item, selected []string, opts ...Option) *Store {
	s := &Store{
		reducer:   Reducer{NewID: NewUUID},
		state:     NewState(items, selected...),
		observers: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = logrus.NewEntry(l)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with every new state. The returned
// function removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Dispatch applies a and returns the resulting state. On error the state
// is unchanged and observers are not called.
func (s *Store) Dispatch(a Action) (State, error) {
	s.mu.Lock()
	next, err := s.reducer.Apply(s.state, a)
	if err != nil {
		s.mu.Unlock()
		s.log.WithFields(logrus.Fields{
			"action": a.String(),
			"kind":   KindOf(err),
		}).Debugf("action rejected: %v", err)
		return next, err
	}
	s.state = next
	observers := make([]func(State), 0, len(s.observers))
	for id := 0; id < s.nextObs; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"action":   a.String(),
		"items":    next.Len(),
		"selected": next.SelectionLen(),
	}).Debug("action applied")

	for _, fn := range observers {
		fn(next)
	}
	return next, nil
}

func (s *Store) do(a Action) State {
	next, _ := s.Dispatch(a)
	return next
}

func (s *Store) AddTodo(text string) State { return s.do(AddTodo{Text: text}) }

func (s *Store) DeleteTodo(id string) State { return s.do(DeleteTodo{ID: id}) }

func (s *Store) ToggleComplete(id string) State { return s.do(ToggleComplete{ID: id}) }

func (s *Store) EditTodo(id, text string) State { return s.do(EditTodo{ID: id, Text: text}) }

func (s *Store) ToggleSelected(id string) State { return s.do(ToggleSelected{ID: id}) }

func (s *Store) SelectTodo(id string) State { return s.do(SelectTodo{ID: id}) }

func (s *Store) DeselectTodo(id string) State { return s.do(DeselectTodo{ID: id}) }

func (s *Store) ReorderTodos(source, destination int) State {
	return s.do(ReorderTodos{Source: source, Destination: destination})
}

func (s *Store) BatchReorderTodos(destination int, dir Direction) State {
	return s.do(BatchReorderTodos{Destination: destination, Direction: dir})
}
