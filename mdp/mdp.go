package mdp

type State int

type Action int

type Reward float64

type Probability float64

// Transition is one possible outcome of taking an action in a state.
// Terminal is always false for models without absorbing states.
type Transition struct {
	Probability Probability
	Next        State
	Reward      Reward
	Terminal    bool
}

type StateAction struct {
	State  State
	Action Action
}

type Dimensions struct {
	Rows    int
	Cols    int
	States  int
	Actions int
}

type Model interface {
	Transitions(State, Action) []Transition
	Dimensions() Dimensions
}

// IsTerminal reports whether every outcome of every action taken from s
// ends the episode.
func IsTerminal(m Model, s State) bool {
	dims := m.Dimensions()
	for a := 0; a < dims.Actions; a++ {
		ts := m.Transitions(s, Action(a))
		if len(ts) == 0 {
			return false
		}
		for _, t := range ts {
			if !t.Terminal {
				return false
			}
		}
	}
	return dims.Actions > 0
}
