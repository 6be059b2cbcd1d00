// Copyright 2026 Sonic Labs
// This file is part of padfsm.
//
// padfsm is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padfsm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with padfsm. If not, see <http://www.gnu.org/licenses/>.

// Package analysis derives structural properties of padding machines:
// reachability, per-event transition matrices and their Markov chains.
package analysis

import (
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"gonum.org/v1/gonum/floats"
)

// Reachable returns the sorted indices of the states reachable from the
// initial state over transitions of positive probability on any event.
func Reachable(m *machine.Machine) []int {
	n := len(m.States)
	if n == 0 {
		return nil
	}
	seen := make([]bool, n)
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, vec := range m.States[i].NextState {
			for j := 0; j < n && j < len(vec); j++ {
				if vec[j] > 0 && !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
	}
	return collect(seen, true)
}

// Unreachable returns the sorted indices of the states Reachable leaves out.
func Unreachable(m *machine.Machine) []int {
	seen := make([]bool, len(m.States))
	for _, i := range Reachable(m) {
		seen[i] = true
	}
	return collect(seen, false)
}

func collect(flags []bool, want bool) []int {
	res := []int{}
	for i, f := range flags {
		if f == want {
			res = append(res, i)
		}
	}
	return res
}

// EventSummary splits the mass of one transition vector.
type EventSummary struct {
	Event   event.Event
	Targets int     // number of columns with positive probability
	States  float64 // mass on real states
	Cancel  float64 // mass on the cancel column
	End     float64 // mass on the end column
	NoOp    float64 // mass left undefined
}

// StateSummary describes one state of a machine.
type StateSummary struct {
	Index     int
	Reachable bool
	Events    []EventSummary // defined events in wire order
}

// Summary describes a machine.
type Summary struct {
	States      []StateSummary
	Unreachable []int
}

// Summarize computes the summary of a valid machine.
func Summarize(m *machine.Machine) Summary {
	n := len(m.States)
	reachable := make([]bool, n)
	for _, i := range Reachable(m) {
		reachable[i] = true
	}
	res := Summary{
		States:      make([]StateSummary, 0, n),
		Unreachable: Unreachable(m),
	}
	for i, s := range m.States {
		ss := StateSummary{Index: i, Reachable: reachable[i]}
		for _, ev := range event.Events() {
			vec, found := s.NextState[ev]
			if !found || len(vec) != n+2 {
				continue
			}
			es := EventSummary{
				Event:  ev,
				States: floats.Sum(vec[:n]),
				Cancel: vec[n],
				End:    vec[n+1],
			}
			for _, p := range vec {
				if p > 0 {
					es.Targets++
				}
			}
			if rest := 1 - floats.Sum(vec); rest > 0 {
				es.NoOp = rest
			}
			ss.Events = append(ss.Events, es)
		}
		res.States = append(res.States, ss)
	}
	return res
}
