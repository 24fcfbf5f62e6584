package gridworld

import (
	"fmt"
	"strings"

	"github.com/CodeStranger-Fred/gridmodel/mdp"
	log "github.com/sirupsen/logrus"
)

type Variant int

const (
	VariantTeleport Variant = iota
	VariantTerminal
)

func (v Variant) String() string {
	switch v {
	case VariantTeleport:
		return "teleport"
	case VariantTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teleport", "a", "1":
		return VariantTeleport, nil
	case "terminal", "b", "2":
		return VariantTerminal, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// Model is a precomputed transition table for every (state, action) of a
// grid. It owns a private copy of the grid it was built from.
type Model struct {
	variant Variant
	grid    Grid
	table   map[mdp.StateAction][]mdp.Transition
}

var _ mdp.Model = (*Model)(nil)

// stepFunc computes the outcomes of taking act from s, which sits at
// (row, col). dest is the cell the offset points to and may be off-grid.
type stepFunc func(m *Model, s mdp.State, row, col int, dest mdp.Offset) ([]mdp.Transition, error)

// build validates grid and fills the table by visiting every state and
// action once. Nothing is returned on error.
func build(variant Variant, grid Grid, recognized tileSet, located []Tile, step stepFunc) (*Model, error) {
	grid = grid.Clone()
	if err := validate(grid, recognized, located); err != nil {
		return nil, err
	}

	m := &Model{
		variant: variant,
		grid:    grid,
		table:   make(map[mdp.StateAction][]mdp.Transition, grid.Rows()*grid.Cols()*mdp.NumActions),
	}
	dims := m.Dimensions()
	for s := 0; s < dims.States; s++ {
		state := mdp.State(s)
		row, col := m.Coordinates(state)
		for _, a := range mdp.Actions() {
			act := a.Offset()
			dest := mdp.Offset{Row: row + act.Row, Col: col + act.Col}
			ts, err := step(m, state, row, col, dest)
			if err != nil {
				return nil, err
			}
			if err := mdp.CheckTransitions(ts); err != nil {
				return nil, fmt.Errorf("state %d action %v: %w", s, a, err)
			}
			m.table[mdp.StateAction{State: state, Action: a}] = ts
		}
	}
	log.Debugf("built %s model: %d states, %d actions", variant, dims.States, dims.Actions)
	return m, nil
}

func validate(grid Grid, recognized tileSet, located []Tile) error {
	if err := grid.checkShape(); err != nil {
		return err
	}
	// State numbering strides by the row count, which only addresses every
	// cell when the grid is square.
	if grid.Rows() != grid.Cols() {
		return fmt.Errorf("%w: %dx%d grid is not square", ErrMalformedGrid, grid.Rows(), grid.Cols())
	}
	for r, row := range grid {
		for c, t := range row {
			if !recognized.has(t) {
				return fmt.Errorf("%w: %q at (%d, %d)", ErrInvalidTile, t, r, c)
			}
		}
	}
	for _, t := range located {
		if n := count(grid, t); n > 1 {
			return fmt.Errorf("%w: %q appears %d times", ErrDuplicateTile, t, n)
		}
	}
	return nil
}

func (m *Model) Variant() Variant {
	return m.variant
}

// HasTerminals reports whether transitions carry a meaningful terminal flag.
func (m *Model) HasTerminals() bool {
	return m.variant == VariantTerminal
}

// Transitions returns a copy of the outcomes for (s, a), or nil when the
// pair is outside the model.
func (m *Model) Transitions(s mdp.State, a mdp.Action) []mdp.Transition {
	ts, ok := m.table[mdp.StateAction{State: s, Action: a}]
	if !ok {
		return nil
	}
	out := make([]mdp.Transition, len(ts))
	copy(out, ts)
	return out
}

func (m *Model) Dimensions() mdp.Dimensions {
	rows, cols := m.grid.Rows(), m.grid.Cols()
	return mdp.Dimensions{
		Rows:    rows,
		Cols:    cols,
		States:  rows * cols,
		Actions: mdp.NumActions,
	}
}

func (m *Model) ActionOffsets() []mdp.Offset {
	return mdp.ActionOffsets()
}

func (m *Model) ActionLabels() []string {
	return mdp.ActionLabels()
}

func (m *Model) Grid() Grid {
	return m.grid.Clone()
}

// State numbers (row, col) as row*rows + col.
func (m *Model) State(row, col int) mdp.State {
	return mdp.State(row*m.grid.Rows() + col)
}

func (m *Model) Coordinates(s mdp.State) (int, int) {
	n := m.grid.Rows()
	return int(s) / n, int(s) % n
}

// Tile returns the symbol drawn at s, or 0 when s is outside the grid.
func (m *Model) Tile(s mdp.State) Tile {
	if s < 0 || int(s) >= m.Dimensions().States {
		return 0
	}
	row, col := m.Coordinates(s)
	return m.grid[row][col]
}

func (m *Model) locateState(t Tile) (mdp.State, error) {
	row, col, err := Locate(m.grid, t)
	if err != nil {
		return 0, err
	}
	return m.State(row, col), nil
}

func (m *Model) inBounds(o mdp.Offset) bool {
	return m.grid.InBounds(o.Row, o.Col)
}
