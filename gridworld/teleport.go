package gridworld

import (
	"fmt"

	"github.com/CodeStranger-Fred/gridmodel/mdp"
)

const (
	CollisionReward mdp.Reward = -0.5
	MoveReward      mdp.Reward = 0.0
	BlueReward      mdp.Reward = 5.0
	GreenReward     mdp.Reward = 2.5
)

// NewTeleportModel builds the model without terminal states. Blue jumps
// to red, green jumps to red or yellow with equal odds, and every other
// tile moves one cell or bumps into the border.
func NewTeleportModel(grid Grid) (*Model, error) {
	return build(VariantTeleport, grid, teleportTiles, []Tile{Red, Yellow}, teleportStep)
}

func teleportStep(m *Model, s mdp.State, row, col int, dest mdp.Offset) ([]mdp.Transition, error) {
	switch t := m.grid[row][col]; t {
	case White, Red, Yellow:
		if !m.inBounds(dest) {
			return []mdp.Transition{{Probability: 1, Next: s, Reward: CollisionReward}}, nil
		}
		return []mdp.Transition{{Probability: 1, Next: m.State(dest.Row, dest.Col), Reward: MoveReward}}, nil
	case Blue:
		return blueJump(m)
	case Green:
		return greenJump(m)
	default:
		return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrInvalidTile, t, row, col)
	}
}

// blueJump ignores the chosen action.
func blueJump(m *Model) ([]mdp.Transition, error) {
	red, err := m.locateState(Red)
	if err != nil {
		return nil, err
	}
	return []mdp.Transition{{Probability: 1, Next: red, Reward: BlueReward}}, nil
}

func greenJump(m *Model) ([]mdp.Transition, error) {
	red, err := m.locateState(Red)
	if err != nil {
		return nil, err
	}
	yellow, err := m.locateState(Yellow)
	if err != nil {
		return nil, err
	}
	return []mdp.Transition{
		{Probability: 0.5, Next: red, Reward: GreenReward},
		{Probability: 0.5, Next: yellow, Reward: GreenReward},
	}, nil
}
