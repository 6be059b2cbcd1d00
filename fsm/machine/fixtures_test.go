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

package machine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/padfsm/fsm/dist"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/stretchr/testify/require"
)

var (
	uniformTimeout = dist.Dist{Kind: dist.Uniform, Param1: 1.2, Param2: 3.4, Start: 5.6, Max: 7.8}
	poissonAction  = dist.Dist{Kind: dist.Poisson, Param1: 0.5, Param2: 0.0, Start: 1.2, Max: 3.4}
	paretoTimeout  = dist.Dist{Kind: dist.Pareto, Param1: 1.2, Param2: 3.4, Start: 5.6, Max: 7.8}
	geometricBlock = dist.Dist{Kind: dist.Geometric, Param1: 0.3, Param2: 0.7, Start: 3.4, Max: 7.9}
)

// readFixture returns the canonical text of a machine stored in testdata.
func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".hex"))
	require.NoError(t, err)
	return strings.TrimSpace(string(data))
}

func newState(t *testing.T, transitions map[event.Event]map[int]float64, numStates int) state.State {
	t.Helper()
	s, err := state.New(transitions, numStates)
	require.NoError(t, err)
	return s
}

func noopMachine(t *testing.T) *Machine {
	return &Machine{States: []state.State{newState(t, nil, 1)}}
}

func paddingMachine(t *testing.T) *Machine {
	s0 := newState(t, map[event.Event]map[int]float64{event.PaddingSent: {0: 1.0}}, 1)
	s0.Timeout = uniformTimeout
	s0.Action = poissonAction
	return &Machine{
		AllowedPaddingBytes: 1000,
		MaxPaddingFrac:      0.123,
		States:              []state.State{s0},
	}
}

func blockingMachine(t *testing.T) *Machine {
	s0 := newState(t, map[event.Event]map[int]float64{event.BlockingEnd: {0: 1.0}}, 1)
	s0.Timeout = paretoTimeout
	s0.Action = geometricBlock
	s0.ActionIsBlock = true
	return &Machine{
		AllowedBlockedMicrosec: 100000,
		MaxBlockingFrac:        0.9999,
		States:                 []state.State{s0},
		IncludeSmallPackets:    true,
	}
}

func mixedMachine(t *testing.T) *Machine {
	s0 := newState(t, map[event.Event]map[int]float64{event.BlockingEnd: {1: 1.0}}, 2)
	s0.Timeout = paretoTimeout
	s0.Action = geometricBlock
	s0.ActionIsBlock = true
	s1 := newState(t, map[event.Event]map[int]float64{event.PaddingSent: {0: 1.0}}, 2)
	s1.Timeout = uniformTimeout
	s1.Action = poissonAction
	return &Machine{
		AllowedBlockedMicrosec: 100000,
		MaxBlockingFrac:        0.9999,
		States:                 []state.State{s0, s1},
		IncludeSmallPackets:    true,
	}
}

func hundredStateMachine(t *testing.T) *Machine {
	const numStates = 100
	states := make([]state.State, 0, numStates)
	for i := 0; i < numStates; i++ {
		s := newState(t, map[event.Event]map[int]float64{event.PaddingSent: {i: 1.0}}, numStates)
		s.Timeout = uniformTimeout
		s.Action = poissonAction
		states = append(states, s)
	}
	return &Machine{
		AllowedBlockedMicrosec: 100000,
		MaxBlockingFrac:        0.9999,
		States:                 states,
		IncludeSmallPackets:    true,
	}
}

// twoStateMachine exercises every distribution field and flag.
func twoStateMachine(t *testing.T) *Machine {
	s0 := newState(t, map[event.Event]map[int]float64{
		event.PaddingRecv:  {0: 0.4, 1: 0.6},
		event.LimitReached: {1: 1.0},
	}, 2)
	s0.Timeout = dist.Dist{Kind: dist.Poisson, Param1: 1.2, Param2: 3.4, Start: 5.6, Max: 7.8}
	s0.Limit = dist.Dist{Kind: dist.Pareto, Param1: 9.0, Param2: 1.2, Start: 3.4, Max: 5.6}
	s0.Action = dist.Dist{Kind: dist.Geometric, Param1: 0.8, Param2: 9.0, Start: 1.2, Max: 3.4}
	s0.LimitIncludesNonPadding = true

	s1 := newState(t, map[event.Event]map[int]float64{
		event.NonPaddingRecv: {0: 0.2, 1: 0.8},
		event.PaddingSent:    {0: 1.0},
	}, 2)
	s1.Timeout = dist.Dist{Kind: dist.Uniform, Param1: 0.1, Param2: 1.2, Start: 3.4, Max: 5.6}
	s1.Limit = dist.Dist{Kind: dist.Weibull, Param1: 1.2, Param2: 3.4, Start: 5.6, Max: 7.8}
	s1.Action = dist.Dist{Kind: dist.Beta, Param1: 5.6, Param2: 7.8, Start: 1.2, Max: 9.0}
	s1.ActionIsBlock = true
	s1.Replace = true

	return &Machine{
		AllowedPaddingBytes:    1000,
		MaxPaddingFrac:         0.123,
		AllowedBlockedMicrosec: 2000,
		MaxBlockingFrac:        0.456,
		States:                 []state.State{s0, s1},
		IncludeSmallPackets:    true,
	}
}
