package mdp

import "fmt"

const (
	Left Action = iota
	Down
	Right
	Up
)

const NumActions = 4

type Offset struct {
	Row int
	Col int
}

var offsets = [NumActions]Offset{
	Left:  {0, -1},
	Down:  {1, 0},
	Right: {0, 1},
	Up:    {-1, 0},
}

var labels = [NumActions]string{
	Left:  "←",
	Down:  "↓",
	Right: "→",
	Up:    "↑",
}

var names = [NumActions]string{
	Left:  "left",
	Down:  "down",
	Right: "right",
	Up:    "up",
}

func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

func (a Action) Offset() Offset {
	if !a.Valid() {
		return Offset{}
	}
	return offsets[a]
}

// Label is the arrow glyph a renderer draws for the action.
func (a Action) Label() string {
	if !a.Valid() {
		return "?"
	}
	return labels[a]
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return names[a]
}

// Actions lists the four directions in index order.
func Actions() []Action {
	return []Action{Left, Down, Right, Up}
}

func ActionOffsets() []Offset {
	out := make([]Offset, NumActions)
	copy(out, offsets[:])
	return out
}

func ActionLabels() []string {
	out := make([]string, NumActions)
	copy(out, labels[:])
	return out
}
