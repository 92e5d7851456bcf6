package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/idilsaglam/tada/internal/todo"
)

// A drag moves a virtual pointer in half-row steps. Each row is treated as
// rowUnits tall; the pointer sits at the middle of the upper or lower half.
const rowUnits = 4

// listItem adapts a row to bubbles/list.Item
type listItem struct {
	todo.Row
}

func (i listItem) FilterValue() string { return i.Text }

// dragView is what the delegate needs to draw an active drag.
type dragView struct {
	active bool
	multi  bool
	id     string
	hover  int
	dir    todo.Direction
}

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	drag dragView
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.Text
	if it.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	mark := " "
	if it.Selected {
		mark = markStyle.Render(markSelected)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	if d.drag.active && !d.drag.multi && it.ID == d.drag.id {
		prefix = dropStyle.Render("≡ ")
	}

	if d.drag.active && d.drag.multi && index == d.drag.hover {
		// where the block will land relative to this row
		prefix = dropStyle.Render("▲ ")
		if d.drag.dir == todo.Up {
			prefix = dropStyle.Render("▼ ")
		}
	}

	line := fmt.Sprintf("%s%s %s %s", prefix, mark, box, text)
	fmt.Fprint(w, line)
}

type keyMap struct {
	toggle, sel, del, add, edit, drag, quit key.Binding
	up, down, drop, cancel                  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		sel:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "select")),
		del:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		drag:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "drag")),
		quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pointer up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pointer down")),
		drop:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "drop")),
		cancel: key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc", "cancel")),
	}
}

type modelTUI struct {
	store *todo.Store
	state todo.State
	list  list.Model
	keys  keyMap
	log   *logrus.Entry

	// Inline add / edit share one text input
	adding   bool
	editing  bool
	editID   string
	ti       textinput.Model
	inputErr string

	// Drag in progress
	drag    *todo.Drag
	pointer int // in half rows: row = pointer/2, lower half when odd

	status string

	width, height int
}

// Run starts the Bubble Tea list on top of store. Every change goes
// through the store's command surface; nothing is written anywhere.
func Run(store *todo.Store, log *logrus.Entry) error {
	m := newModel(store, log)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.resize(w, h)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newModel(store *todo.Store, log *logrus.Entry) modelTUI {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	// Positions must always refer to the full list.
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.toggle, keys.sel, keys.add, keys.edit, keys.drag}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.toggle, keys.sel, keys.del, keys.add, keys.edit, keys.drag, keys.quit}
	}

	m := modelTUI{
		store:  store,
		list:   l,
		keys:   keys,
		log:    log,
		width:  80,
		height: 24,
	}
	// set up text input for inline add/edit
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	m.sync(store.State(), "")
	m.resize(m.width, m.height)
	return m
}

// sync re-renders from st and keeps the cursor on the item with cursorID,
// or on the same position when that item is gone.
func (m *modelTUI) sync(st todo.State, cursorID string) {
	idx := m.list.Index()
	m.state = st

	rows := st.Rows()
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = listItem{Row: r}
	}
	m.list.SetItems(items)

	d, p := st.Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), d,
		pendingStyle.Render("•"), p,
		markStyle.Render(markSelected), st.SelectionLen(),
		accentStyle.Render("Total"), st.Len(),
	)

	if i := st.IndexOf(cursorID); i >= 0 {
		idx = i
	}
	if idx >= st.Len() {
		idx = st.Len() - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.list.Select(idx)
	m.refreshDelegate()
}

func (m *modelTUI) refreshDelegate() {
	d := itemDelegate{}
	if m.drag != nil {
		d.drag = dragView{
			active: true,
			multi:  m.drag.Multi(),
			id:     m.drag.ID,
			hover:  m.pointer / 2,
			dir:    m.pointerAt().Direction(),
		}
	}
	m.list.SetDelegate(d)
}

func (m *modelTUI) resize(w, h int) {
	m.width, m.height = w, h
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 6
	}
	if m.status != "" {
		listHeight--
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
}

func (m modelTUI) cursorItem() (todo.Row, bool) {
	i := m.list.Index()
	rows := m.state.Rows()
	if i < 0 || i >= len(rows) {
		return todo.Row{}, false
	}
	return rows[i], true
}

// dispatch sends a through the store and reports rejections in the status line.
func (m *modelTUI) dispatch(a todo.Action, cursorID string) error {
	st, err := m.store.Dispatch(a)
	if err != nil {
		m.status = describe(err)
		return err
	}
	if m.drag == nil {
		m.status = ""
	}
	m.sync(st, cursorID)
	return nil
}

func describe(err error) string {
	switch todo.KindOf(err) {
	case todo.KindEmptyInput:
		return "Text cannot be empty"
	case todo.KindSelfTargetSelected:
		return "Cannot drop the selection onto one of its own items"
	case todo.KindEmptySelection:
		return "Nothing selected"
	case todo.KindNotFound:
		return "Item no longer exists"
	case todo.KindIndexOutOfRange:
		return "No item there"
	}
	return err.Error()
}

func (m modelTUI) pointerAt() todo.Pointer {
	offset := float64(rowUnits / 4)
	if m.pointer%2 == 1 {
		offset = float64(rowUnits * 3 / 4)
	}
	return todo.Pointer{Index: m.pointer / 2, Offset: offset, Height: rowUnits}
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}
	if m.drag != nil {
		return m.updateDrag(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.toggle):
		if r, ok := m.cursorItem(); ok {
			_ = m.dispatch(todo.ToggleComplete{ID: r.ID}, r.ID)
		}
		return m, nil

	case key.Matches(km, m.keys.sel):
		if r, ok := m.cursorItem(); ok {
			_ = m.dispatch(todo.ToggleSelected{ID: r.ID}, r.ID)
		}
		return m, nil

	case key.Matches(km, m.keys.del):
		if r, ok := m.cursorItem(); ok {
			_ = m.dispatch(todo.DeleteTodo{ID: r.ID}, "")
		}
		return m, nil

	case key.Matches(km, m.keys.add):
		m.adding = true
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item text..."
		m.resize(m.width, m.height)
		return m, m.ti.Focus()

	case key.Matches(km, m.keys.edit):
		if r, ok := m.cursorItem(); ok {
			m.editing = true
			m.editID = r.ID
			m.inputErr = ""
			m.ti.SetValue(r.Text)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit item text..."
			m.resize(m.width, m.height)
			return m, m.ti.Focus()
		}
		return m, nil

	case key.Matches(km, m.keys.drag):
		if r, ok := m.cursorItem(); ok {
			d, err := todo.BeginDrag(m.state, r.ID)
			if err != nil {
				m.status = describe(err)
				return m, nil
			}
			m.drag = &d
			m.pointer = 2 * m.state.IndexOf(r.ID)
			if d.Multi() {
				m.status = fmt.Sprintf("Dragging %d selected items", len(d.Snapshot))
			} else {
				m.status = "Dragging " + r.Text
			}
			m.refreshDelegate()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			var a todo.Action = todo.AddTodo{Text: m.ti.Value()}
			cursor := ""
			if m.editing {
				a = todo.EditTodo{ID: m.editID, Text: m.ti.Value()}
				cursor = m.editID
			}
			st, err := m.store.Dispatch(a)
			if err != nil {
				m.inputErr = describe(err)
				if !errors.Is(err, todo.ErrEmptyInput) {
					m.closeInput()
				}
				return m, nil
			}
			if m.adding && st.Len() > 0 {
				cursor = st.IDs()[st.Len()-1]
			}
			m.closeInput()
			m.sync(st, cursor)
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *modelTUI) closeInput() {
	m.adding = false
	m.editing = false
	m.editID = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize(m.width, m.height)
}

func (m modelTUI) updateDrag(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.up):
		m.movePointer(-1)
	case key.Matches(km, m.keys.down):
		m.movePointer(1)
	case key.Matches(km, m.keys.drop):
		d := *m.drag
		m.drag = nil
		m.status = ""
		if a, ok := d.Drop(m.state, m.pointerAt()); ok {
			_ = m.dispatch(a, d.ID)
		}
		m.refreshDelegate()
	case key.Matches(km, m.keys.cancel):
		m.drag = nil
		m.status = ""
		m.refreshDelegate()
	}
	return m, nil
}

// movePointer advances the virtual pointer and feeds the hover tick to
// the drag, applying any reorder it asks for.
func (m *modelTUI) movePointer(step int) {
	last := 2*m.state.Len() - 1
	m.pointer += step
	if m.pointer < 0 {
		m.pointer = 0
	}
	if m.pointer > last {
		m.pointer = last
	}
	p := m.pointerAt()
	if a, ok := m.drag.Hover(m.state, p); ok {
		if err := m.dispatch(a, m.drag.ID); err != nil {
			m.log.WithError(err).Debug("hover reorder rejected")
		}
	}
	m.list.Select(p.Index)
	m.refreshDelegate()
}

func (m modelTUI) View() string {
	content := m.list.View()
	if m.status != "" {
		content += "\n" + helpStyle.Render(m.status)
	}
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += "  " + errorStyle.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return panelString(strings.TrimRight(content, "\n"))
}
