package todo

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/model"
)

// Direction names the half of the target row the pointer was over.
//
// Up means the lower half and places the block after the target; Down means
// the upper half and places it before. The names follow the target row's
// apparent motion, not the pointer's.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "UP"
	}
	return "DOWN"
}

// ParseDirection accepts "up" or "down" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Down, fmt.Errorf("invalid direction %q (want up or down)", s)
}

// DirectionFromOffset derives the direction from the pointer's vertical
// offset within the hovered row.
func DirectionFromOffset(offset, height float64) Direction {
	if offset > height/2 {
		return Up
	}
	return Down
}

// BatchReorder relocates every selected item as one contiguous block next
// to the item at destination. The block keeps list order, as do the
// remaining items. The returned slice is always freshly allocated.
func BatchReorder(s State, destination int, dir Direction) ([]model.Item, error) {
	if len(s.selected) == 0 {
		return nil, newError(KindEmptySelection, "nothing selected")
	}
	if destination < 0 || destination >= len(s.items) {
		return nil, indexOutOfRange("destination", destination, len(s.items))
	}
	target := s.items[destination].ID
	if s.IsSelected(target) {
		return nil, newError(KindSelfTargetSelected, "target %q is part of the selection", target).
			WithDetail("id", target)
	}

	block := make([]model.Item, 0, len(s.selected))
	rest := make([]model.Item, 0, len(s.items))
	insertAt := -1
	for _, it := range s.items {
		if s.IsSelected(it.ID) {
			block = append(block, it)
			continue
		}
		if it.ID == target {
			insertAt = len(rest)
		}
		rest = append(rest, it)
	}

	if dir == Up {
		insertAt++
	}
	if insertAt < 0 {
		insertAt = 0
	}
	if insertAt > len(rest) {
		insertAt = len(rest)
	}

	out := make([]model.Item, 0, len(s.items))
	out = append(out, rest[:insertAt]...)
	out = append(out, block...)
	out = append(out, rest[insertAt:]...)
	return out, nil
}

// moveOne removes the item at src and reinserts it at dst of the
// post-removal sequence.
func moveOne(items []model.Item, src, dst int) []model.Item {
	moved := items[src]
	rest := make([]model.Item, 0, len(items))
	rest = append(rest, items[:src]...)
	rest = append(rest, items[src+1:]...)

	out := make([]model.Item, 0, len(items))
	out = append(out, rest[:dst]...)
	out = append(out, moved)
	out = append(out, rest[dst:]...)
	return out
}
