package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodeStranger-Fred/gridmodel/gridworld"
	"github.com/CodeStranger-Fred/gridmodel/mdp"
	"github.com/logrusorgru/aurora"
)

type printer struct {
	w  io.Writer
	au aurora.Aurora
}

func newPrinter(w io.Writer, color bool) printer {
	return printer{w: w, au: aurora.NewAurora(color)}
}

func (p printer) tile(t gridworld.Tile) aurora.Value {
	s := fmt.Sprintf(" %s ", t)
	switch t {
	case gridworld.Red:
		return p.au.BgRed(s)
	case gridworld.Yellow:
		return p.au.BgYellow(s)
	case gridworld.Blue:
		return p.au.BgBlue(s)
	case gridworld.Green:
		return p.au.BgGreen(s)
	case gridworld.Terminal:
		return p.au.BgBlack(p.au.White(s))
	default:
		return p.au.White(s)
	}
}

func (p printer) printGrid(m *gridworld.Model) {
	grid := m.Grid()
	fmt.Fprint(p.w, "   ")
	for c := 0; c < grid.Cols(); c++ {
		fmt.Fprintf(p.w, " %d ", c)
	}
	fmt.Fprintln(p.w)
	for r, row := range grid {
		fmt.Fprintf(p.w, "%2d ", r)
		for _, t := range row {
			fmt.Fprint(p.w, p.tile(t))
		}
		fmt.Fprintln(p.w)
	}
}

func (p printer) printTable(m *gridworld.Model) {
	dims := m.Dimensions()
	labels := m.ActionLabels()
	for s := 0; s < dims.States; s++ {
		state := mdp.State(s)
		row, col := m.Coordinates(state)
		fmt.Fprintf(p.w, "%3d (%d,%d) %v\n", s, row, col, p.tile(m.Tile(state)))
		for a := 0; a < dims.Actions; a++ {
			var outs []string
			for _, t := range m.Transitions(state, mdp.Action(a)) {
				outs = append(outs, p.transition(t, m.HasTerminals()))
			}
			fmt.Fprintf(p.w, "    %s %s\n", labels[a], strings.Join(outs, "  "))
		}
	}
}

func (p printer) transition(t mdp.Transition, terminals bool) string {
	reward := p.au.Blue(format2x2(float64(t.Reward)))
	if t.Reward < 0 {
		reward = p.au.Red(format2x2(float64(t.Reward)))
	} else if t.Reward > 0 {
		reward = p.au.Green(format2x2(float64(t.Reward)))
	}
	s := fmt.Sprintf("p=%.2f s'=%-3d r=%v", float64(t.Probability), int(t.Next), reward)
	if terminals && t.Terminal {
		s += fmt.Sprint(" ", p.au.Bold("done"))
	}
	return s
}

func format2x2(x float64) string {
	if x < 0 {
		return "-" + fmt.Sprintf("%04.2f", -x)
	}
	return fmt.Sprintf("+%04.2f", x)
}
