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
	"fmt"
	"math"
	"testing"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/dist"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_ValidateFractionBounds(t *testing.T) {
	tests := []struct {
		value float64
		valid bool
	}{
		{0, true},
		{0.5, true},
		{1, true},
		{math.Copysign(0, -1), true},
		{-0.1, false},
		{1.0001, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("padding %v", test.value), func(t *testing.T) {
			m := paddingMachine(t)
			m.MaxPaddingFrac = test.value
			checkFraction(t, m.Validate(), test.valid, "max_padding_frac")
		})
		t.Run(fmt.Sprintf("blocking %v", test.value), func(t *testing.T) {
			m := paddingMachine(t)
			m.MaxBlockingFrac = test.value
			checkFraction(t, m.Validate(), test.valid, "max_blocking_frac")
		})
	}
}

func checkFraction(t *testing.T, err error, valid bool, field string) {
	t.Helper()
	if valid {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	var verr *fsm.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, field, verr.Field)
	assert.Equal(t, fsm.NoState, verr.State)
	assert.ErrorContains(t, err, "has to be [0.0, 1.0]")
}

func machineWithStates(n int) *Machine {
	return &Machine{States: make([]state.State, n)}
}

func TestMachine_ValidateStateCount(t *testing.T) {
	err := machineWithStates(0).Validate()
	assert.ErrorContains(t, err, "a machine must have at least one state")
	assert.True(t, errors.Is(err, fsm.ErrValidation))

	assert.NoError(t, machineWithStates(1).Validate())
	assert.NoError(t, machineWithStates(fsm.StateMax).Validate())

	err = machineWithStates(fsm.StateMax + 1).Validate()
	assert.ErrorContains(t, err, "too many states, max is 1000, found 1001")
	assert.True(t, errors.Is(err, fsm.ErrValidation))
}

func TestMachine_ValidateShape(t *testing.T) {
	m := mixedMachine(t)
	m.States[1].NextState[event.PaddingSent] = []float64{1, 0, 0}

	err := m.Validate()
	require.EqualError(t, err, "state 1: event PaddingSent: next_state: expected vector of length 4, got 3")
	var verr *fsm.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.State)
	assert.Equal(t, 3, verr.Value)
}

func TestMachine_ValidateProbabilityMass(t *testing.T) {
	tests := []struct {
		name    string
		vec     []float64
		wantErr string
	}{
		{name: "exact", vec: []float64{0.3, 0.7, 0, 0}},
		{name: "rounding", vec: []float64{0.3, 0.7004, 0, 0}},
		{name: "reserved columns", vec: []float64{0, 0, 0.5, 0.5}},
		{name: "residual no-op", vec: []float64{0.01, 0, 0, 0}},
		{name: "empty", vec: []float64{0, 0, 0, 0}, wantErr: "total probability 0"},
		{name: "too much", vec: []float64{0.3, 0.7006, 0, 0}, wantErr: "total probability"},
		{name: "negative", vec: []float64{-0.5, 1, 0, 0}, wantErr: "found probability -0.5"},
		{name: "above one", vec: []float64{0, 1.01, 0, 0}, wantErr: "found probability 1.01"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := mixedMachine(t)
			m.States[0].NextState[event.UpdateMTU] = test.vec
			err := m.Validate()
			if test.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, test.wantErr)
			assert.ErrorContains(t, err, "state 0: event UpdateMTU")
		})
	}
}

func TestMachine_ValidateDistributions(t *testing.T) {
	m := mixedMachine(t)
	m.States[1].Limit = dist.Dist{Kind: dist.Beta, Param1: 5.6, Param2: 7.8, Start: 9.0, Max: 1.2}

	err := m.Validate()
	require.EqualError(t, err, "state 1: limit: max (1.2) must not be smaller than start (9)")
	var verr *fsm.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "limit", verr.Field)
	assert.Equal(t, 1.2, verr.Value)
}

func TestMachine_ValidateChecksTransitionsBeforeDistributions(t *testing.T) {
	m := paddingMachine(t)
	m.States[0].Action = dist.Dist{Kind: dist.Poisson, Param1: -1}
	m.States[0].NextState[event.PaddingSent] = []float64{2, 0, 0}

	err := m.Validate()
	assert.ErrorContains(t, err, "next_state")

	m.MaxPaddingFrac = 2
	assert.ErrorContains(t, m.Validate(), "max_padding_frac")
}

func TestMachine_EqualAndClone(t *testing.T) {
	m := twoStateMachine(t)
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.True(t, c.Equal(m))

	c.States[0].NextState[event.PaddingRecv][1] = 0.5
	assert.False(t, m.Equal(c))
	assert.Equal(t, 0.6, m.States[0].NextState[event.PaddingRecv][1])

	c = m.Clone()
	c.States = c.States[:1]
	assert.False(t, m.Equal(c))

	c = m.Clone()
	c.IncludeSmallPackets = false
	assert.False(t, m.Equal(c))

	var none *Machine
	assert.True(t, none.Equal(nil))
	assert.False(t, m.Equal(nil))
}

func TestMachine_String(t *testing.T) {
	assert.Equal(t,
		"Machine{states: 1, padding: 1000 bytes / 0.123, blocking: 0us / 0, small packets: false}",
		paddingMachine(t).String())
}
