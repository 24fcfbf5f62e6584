package gridworld

import (
	"fmt"

	"github.com/CodeStranger-Fred/gridmodel/mdp"
	log "github.com/sirupsen/logrus"
)

const (
	StepReward     mdp.Reward = -0.2
	TerminalReward mdp.Reward = 0.0
)

// TerminalModel is the model with absorbing terminal tiles. Its blue and
// green tiles can trade places through PermuteTwoTiles.
type TerminalModel struct {
	Model
}

// NewTerminalModel builds the model with absorbing terminal tiles. The
// grid must hold exactly one blue and one green tile.
func NewTerminalModel(grid Grid) (*TerminalModel, error) {
	m, err := build(VariantTerminal, grid, terminalTiles, []Tile{Red, Yellow, Blue, Green}, terminalStep)
	if err != nil {
		return nil, err
	}
	for _, t := range []Tile{Blue, Green} {
		if _, _, err := Locate(m.grid, t); err != nil {
			return nil, err
		}
	}
	return &TerminalModel{Model: *m}, nil
}

func terminalStep(m *Model, s mdp.State, row, col int, dest mdp.Offset) ([]mdp.Transition, error) {
	switch t := m.grid[row][col]; t {
	case Blue:
		return blueJump(m)
	case Green:
		return greenJump(m)
	case White, Red, Yellow:
		if !m.inBounds(dest) {
			return []mdp.Transition{{Probability: 1, Next: s, Reward: CollisionReward}}, nil
		}
		next := m.State(dest.Row, dest.Col)
		if m.grid[dest.Row][dest.Col] == Terminal {
			return []mdp.Transition{{Probability: 1, Next: next, Reward: TerminalReward, Terminal: true}}, nil
		}
		return []mdp.Transition{{Probability: 1, Next: next, Reward: StepReward}}, nil
	case Terminal:
		// Absorbing: kept so the table can be queried past the end of an episode.
		return []mdp.Transition{{Probability: 1, Next: s, Reward: TerminalReward, Terminal: true}}, nil
	default:
		return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrInvalidTile, t, row, col)
	}
}

// PermuteTwoTiles swaps the blue and green tiles on the map together with
// the transitions leaving their two states. Transitions of other states
// still point at the same state numbers as before. Calling it twice
// restores the original model.
func (m *TerminalModel) PermuteTwoTiles() {
	blue, errB := m.locateState(Blue)
	green, errG := m.locateState(Green)
	if errB != nil || errG != nil {
		// Unreachable: construction guarantees both tiles and the swap keeps them.
		log.WithError(fmt.Errorf("blue: %v, green: %v", errB, errG)).Warn("permute skipped")
		return
	}

	{
		br, bc := m.Coordinates(blue)
		gr, gc := m.Coordinates(green)
		m.grid[br][bc], m.grid[gr][gc] = Green, Blue
	}
	for _, a := range mdp.Actions() {
		kb := mdp.StateAction{State: blue, Action: a}
		kg := mdp.StateAction{State: green, Action: a}
		fromBlue, fromGreen := clone(m.table[kb]), clone(m.table[kg])
		m.table[kb], m.table[kg] = fromGreen, fromBlue
	}
	log.Debugf("permuted blue %d and green %d", blue, green)
}

func clone(ts []mdp.Transition) []mdp.Transition {
	return append([]mdp.Transition(nil), ts...)
}
