package gridworld

import (
	"testing"

	"github.com/CodeStranger-Fred/gridmodel/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminal(t *testing.T) *TerminalModel {
	t.Helper()
	m, err := NewTerminalModel(TerminalGrid())
	require.NoError(t, err)
	return m
}

type snapshot struct {
	grid  Grid
	table map[mdp.StateAction][]mdp.Transition
}

func take(m *TerminalModel) snapshot {
	s := snapshot{grid: m.Grid(), table: map[mdp.StateAction][]mdp.Transition{}}
	dims := m.Dimensions()
	for st := 0; st < dims.States; st++ {
		for _, a := range mdp.Actions() {
			s.table[mdp.StateAction{State: mdp.State(st), Action: a}] = m.Transitions(mdp.State(st), a)
		}
	}
	return s
}

func TestTerminalModelProbabilitiesSumToOne(t *testing.T) {
	m := newTerminal(t)
	require.NoError(t, mdp.CheckModel(m))
	assert.True(t, m.HasTerminals())
	assert.Equal(t, VariantTerminal, m.Variant())
}

func TestTerminalModelAbsorbing(t *testing.T) {
	m := newTerminal(t)
	for _, s := range []mdp.State{m.State(2, 4), m.State(4, 0)} {
		assert.Equal(t, Terminal, m.Tile(s))
		assert.True(t, mdp.IsTerminal(m, s))
		for _, a := range mdp.Actions() {
			assert.Equal(t, []mdp.Transition{{Probability: 1, Next: s, Reward: 0, Terminal: true}}, m.Transitions(s, a))
		}
	}
	assert.False(t, mdp.IsTerminal(m, 0))
}

func TestTerminalModelMoves(t *testing.T) {
	m := newTerminal(t)

	tests := []struct {
		name   string
		row    int
		col    int
		action mdp.Action
		want   mdp.Transition
	}{
		{"off grid stays", 0, 0, mdp.Left, mdp.Transition{Probability: 1, Next: 0, Reward: -0.5}},
		{"ordinary step", 0, 0, mdp.Down, mdp.Transition{Probability: 1, Next: 5, Reward: -0.2}},
		{"step onto blue is ordinary", 0, 0, mdp.Right, mdp.Transition{Probability: 1, Next: 1, Reward: -0.2}},
		{"into terminal from above", 1, 4, mdp.Down, mdp.Transition{Probability: 1, Next: 14, Reward: 0, Terminal: true}},
		{"into terminal from the side", 4, 1, mdp.Left, mdp.Transition{Probability: 1, Next: 20, Reward: 0, Terminal: true}},
		{"red off grid", 4, 2, mdp.Down, mdp.Transition{Probability: 1, Next: 22, Reward: -0.5}},
		{"yellow up", 4, 4, mdp.Up, mdp.Transition{Probability: 1, Next: 19, Reward: -0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []mdp.Transition{tt.want}, m.Transitions(m.State(tt.row, tt.col), tt.action))
		})
	}
}

func TestTerminalModelTeleports(t *testing.T) {
	m := newTerminal(t)
	red, yellow := m.State(4, 2), m.State(4, 4)
	for _, a := range mdp.Actions() {
		assert.Equal(t, []mdp.Transition{{Probability: 1, Next: red, Reward: 5}}, m.Transitions(1, a))
		assert.Equal(t, []mdp.Transition{
			{Probability: 0.5, Next: red, Reward: 2.5},
			{Probability: 0.5, Next: yellow, Reward: 2.5},
		}, m.Transitions(4, a))
	}
}

func TestTerminalModelErrors(t *testing.T) {
	t.Run("unknown symbol", func(t *testing.T) {
		grid := TerminalGrid()
		grid[3][3] = Tile('X')
		m, err := NewTerminalModel(grid)
		assert.ErrorIs(t, err, ErrInvalidTile)
		assert.Nil(t, m)
	})

	t.Run("green missing", func(t *testing.T) {
		grid, err := ParseGrid("WBR", "WWW", "TWY")
		require.NoError(t, err)
		_, err = NewTerminalModel(grid)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate blue", func(t *testing.T) {
		grid, err := ParseGrid("BBR", "GWW", "TWY")
		require.NoError(t, err)
		_, err = NewTerminalModel(grid)
		assert.ErrorIs(t, err, ErrDuplicateTile)
	})

	t.Run("terminal tiles may repeat", func(t *testing.T) {
		grid, err := ParseGrid("BGR", "TTT", "TWY")
		require.NoError(t, err)
		_, err = NewTerminalModel(grid)
		assert.NoError(t, err)
	})
}

func TestPermuteTwoTiles(t *testing.T) {
	m := newTerminal(t)
	before := take(m)
	blue, green := mdp.State(1), mdp.State(4)

	m.PermuteTwoTiles()
	after := take(m)

	assert.Equal(t, Green, after.grid[0][1])
	assert.Equal(t, Blue, after.grid[0][4])
	for _, a := range mdp.Actions() {
		assert.Equal(t, before.table[mdp.StateAction{State: green, Action: a}], after.table[mdp.StateAction{State: blue, Action: a}])
		assert.Equal(t, before.table[mdp.StateAction{State: blue, Action: a}], after.table[mdp.StateAction{State: green, Action: a}])
	}

	// Neighbours keep pointing at the same state numbers.
	for key, ts := range before.table {
		if key.State == blue || key.State == green {
			continue
		}
		assert.Equal(t, ts, after.table[key], "state %d action %v", key.State, key.Action)
	}
	assert.Equal(t, []mdp.Transition{{Probability: 1, Next: blue, Reward: -0.2}}, m.Transitions(0, mdp.Right))
	require.NoError(t, mdp.CheckModel(m))
}

func TestPermuteTwoTilesInvolution(t *testing.T) {
	m := newTerminal(t)
	before := take(m)

	m.PermuteTwoTiles()
	assert.NotEqual(t, before, take(m))

	m.PermuteTwoTiles()
	after := take(m)
	assert.True(t, before.grid.Equal(after.grid))
	assert.Equal(t, before.table, after.table)
}

func TestPermuteTwoTilesDoesNotAliasEntries(t *testing.T) {
	m := newTerminal(t)
	m.PermuteTwoTiles()
	m.table[mdp.StateAction{State: 1, Action: mdp.Left}][0].Reward = 42
	assert.NotEqual(t, mdp.Reward(42), m.Transitions(1, mdp.Right)[0].Reward)
}
