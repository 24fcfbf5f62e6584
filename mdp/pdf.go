package mdp

import (
	"errors"
	"fmt"
	"math"
)

const Epsilon = 1e-9

var ErrProbabilitySum = errors.New("probabilities do not sum to 1")

func FloatEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func Sum(ts []Transition) Probability {
	var sum Probability
	for _, t := range ts {
		sum += t.Probability
	}
	return sum
}

// CheckTransitions fails when the outcomes of a single (state, action)
// are empty or their probabilities do not add up to one.
func CheckTransitions(ts []Transition) error {
	if len(ts) == 0 {
		return fmt.Errorf("%w: no transitions", ErrProbabilitySum)
	}
	if sum := Sum(ts); !FloatEq(float64(sum), 1) {
		return fmt.Errorf("%w: got %v", ErrProbabilitySum, sum)
	}
	return nil
}

// CheckModel runs CheckTransitions over every (state, action) of m.
func CheckModel(m Model) error {
	dims := m.Dimensions()
	for s := 0; s < dims.States; s++ {
		for a := 0; a < dims.Actions; a++ {
			if err := CheckTransitions(m.Transitions(State(s), Action(a))); err != nil {
				return fmt.Errorf("state %d action %v: %w", s, Action(a), err)
			}
		}
	}
	return nil
}
