package model

// Item is the domain model for a todo entry.
// Selection is not stored here; it lives in the list state's selection set.
type Item struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}
