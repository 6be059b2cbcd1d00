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

package analysis

import (
	"fmt"
	"math"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	estimationEps = 1e-9 // epsilon for stationary distribution
)

// Chain is the Markov chain over the states of a machine that a single
// event induces.
type Chain struct {
	n int        // number of states
	a *mat.Dense // stochastic matrix
}

// Matrix returns the n x (n+2) transition matrix of an event; row i is the
// vector of state i, or zero if the state has no transitions on the event.
// A machine without states has no matrix.
func Matrix(m *machine.Machine, ev event.Event) *mat.Dense {
	n := len(m.States)
	if n == 0 {
		return nil
	}
	a := mat.NewDense(n, n+fsm.ReservedColumns, nil)
	for i, s := range m.States {
		vec, found := s.NextState[ev]
		if !found || len(vec) != n+fsm.ReservedColumns {
			continue
		}
		a.SetRow(i, vec)
	}
	return a
}

// NewChain derives the Markov chain of an event from a valid machine. The
// mass a vector leaves undefined, including an absent vector, stays in its
// state. Machines with mass on the reserved columns have no such chain.
func NewChain(m *machine.Machine, ev event.Event) (*Chain, error) {
	n := len(m.States)
	if n == 0 {
		return nil, fmt.Errorf("NewChain: machine has no states")
	}
	full := Matrix(m, ev)
	a := mat.NewDense(n, n, nil)
	for i := range n {
		row := full.RawRowView(i)
		if reserved := row[n] + row[n+1]; reserved != 0 {
			return nil, fmt.Errorf("NewChain: state %d moves mass (%v) to a reserved column on %v", i, reserved, ev)
		}
		states := append([]float64(nil), row[:n]...)
		total := floats.Sum(states)
		switch {
		case total > 1+fsm.ProbabilityEps:
			return nil, fmt.Errorf("NewChain: row %v sums to %v", i, total)
		case total > 1:
			floats.Scale(1/total, states)
		default:
			states[i] += 1 - total
		}
		a.SetRow(i, states)
	}
	return &Chain{n: n, a: a}, nil
}

// Matrix returns the stochastic matrix of the chain.
func (mc *Chain) Matrix() mat.Matrix {
	return mc.a
}

// Stationary computes the stationary distribution of a Markov Chain.
func (mc *Chain) Stationary() ([]float64, error) {
	// perform eigenvalue decomposition
	var eig mat.Eigen
	ok := eig.Factorize(mc.a, mat.EigenLeft)
	if !ok {
		return nil, fmt.Errorf("eigen-value decomposition failed")
	}

	// find index for eigenvalue of one
	// (note that it is not necessarily the first index)
	v := eig.Values(nil)
	k := -1
	for i, eigenValue := range v {
		if math.Abs(real(eigenValue)-1.0) < estimationEps && math.Abs(imag(eigenValue)) < estimationEps {
			k = i
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("eigen-decomposition failed; no eigenvalue of one found")
	}

	// find left eigenvectors of decomposition
	var ev mat.CDense
	eig.LeftVectorsTo(&ev)

	// compute total for eigenvector with eigenvalue of one.
	total := complex128(0)
	for i := range mc.n {
		total += ev.At(i, k)
	}
	if math.Abs(imag(total)) > estimationEps {
		return nil, fmt.Errorf("eigen-decomposition failed; eigen-vector is a complex number")
	}

	// normalize eigenvector by total
	stationary := make([]float64, mc.n)
	for i := range mc.n {
		stationary[i] = math.Abs(real(ev.At(i, k)) / real(total))
	}
	return stationary, nil
}
