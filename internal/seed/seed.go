package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tada/internal/model"
)

// Seed files are YAML (JSON works too, it is valid YAML) and are only
// ever read. The list lives in memory for the life of the process.

// Entry is one item in a seed file.
type Entry struct {
	ID        string `yaml:"id"`
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
	Selected  bool   `yaml:"selected"`
}

type file struct {
	Items []Entry `yaml:"items"`
}

// List is a resolved seed: items in order plus the ids to select.
type List struct {
	Items    []model.Item
	Selected []string
}

var (
	ErrBlankText   = errors.New("seed entry has blank text")
	ErrDuplicateID = errors.New("seed entry id is not unique")
)

// Default is the list used when no seed file is configured.
func Default() []Entry {
	return []Entry{
		{ID: "1", Text: "Learn Bubble Tea"},
		{ID: "2", Text: "Build a Todo App"},
		{ID: "3", Text: "Build a Demo", Completed: true},
		{ID: "4", Text: "Fix a Bug", Selected: true},
	}
}

// Load reads entries from path. An empty path yields Default.
func Load(path string) ([]Entry, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(b)
}

// Parse decodes a seed document. The document is either a list of entries
// or a mapping with an "items" list.
func Parse(b []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(b, &entries); err == nil {
		return entries, nil
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.Items, nil
}

// Resolve validates entries and assigns ids to those without one.
func Resolve(entries []Entry, newID func() string) (List, error) {
	seen := make(map[string]bool, len(entries))
	out := List{Items: make([]model.Item, 0, len(entries))}
	for i, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			return List{}, fmt.Errorf("entry %d: %w", i+1, ErrBlankText)
		}
		id := strings.TrimSpace(e.ID)
		if id != "" && seen[id] {
			return List{}, fmt.Errorf("entry %d (%s): %w", i+1, id, ErrDuplicateID)
		}
		out.Items = append(out.Items, model.Item{ID: id, Text: text, Completed: e.Completed})
		if id == "" {
			continue
		}
		seen[id] = true
		if e.Selected {
			out.Selected = append(out.Selected, id)
		}
	}
	// Generated ids must not collide with explicit ones declared later.
	for i := range out.Items {
		if out.Items[i].ID != "" {
			continue
		}
		id := newID()
		for seen[id] || id == "" {
			id = newID()
		}
		seen[id] = true
		out.Items[i].ID = id
		if entries[i].Selected {
			out.Selected = append(out.Selected, id)
		}
	}
	out.Selected = selectedInOrder(out.Items, out.Selected)
	return out, nil
}

// LoadList is Load followed by Resolve.
func LoadList(path string, newID func() string) (List, error) {
	entries, err := Load(path)
	if err != nil {
		return List{}, err
	}
	return Resolve(entries, newID)
}

func selectedInOrder(items []model.Item, ids []string) []string {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]string, 0, len(want))
	for _, it := range items {
		if want[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}
