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

// Package machine defines a padding machine, the probabilistic state machine
// that decides when to inject padding or block outgoing traffic, together
// with its validation and its canonical encoding.
package machine

import (
	"fmt"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/cockroachdb/errors"
)

// Machine is a padding machine. A machine must be validated before it is
// used and again after every modification.
type Machine struct {
	// AllowedPaddingBytes is the number of padding bytes the machine may
	// send before MaxPaddingFrac applies.
	AllowedPaddingBytes uint64
	// MaxPaddingFrac is the largest fraction of padding to allow.
	MaxPaddingFrac float64
	// AllowedBlockedMicrosec is the time the machine may block before
	// MaxBlockingFrac applies.
	AllowedBlockedMicrosec uint64
	// MaxBlockingFrac is the largest fraction of time to block.
	MaxBlockingFrac float64
	// States of the machine, state 0 is the initial state.
	States []state.State
	// IncludeSmallPackets makes small packets count as observed traffic.
	IncludeSmallPackets bool
}

// Validate checks the machine invariants in order and returns the first
// violation as a *fsm.ValidationError.
func (m *Machine) Validate() error {
	if !isFraction(m.MaxPaddingFrac) {
		return fsm.Invalid("max_padding_frac", m.MaxPaddingFrac, "has to be [0.0, 1.0], got %v", m.MaxPaddingFrac)
	}
	if !isFraction(m.MaxBlockingFrac) {
		return fsm.Invalid("max_blocking_frac", m.MaxBlockingFrac, "has to be [0.0, 1.0], got %v", m.MaxBlockingFrac)
	}

	numStates := len(m.States)
	if numStates == 0 {
		return fsm.Invalid("states", numStates, "a machine must have at least one state")
	}
	if numStates > fsm.StateMax {
		return fsm.Invalid("states", numStates, "too many states, max is %d, found %d", fsm.StateMax, numStates)
	}

	for i, s := range m.States {
		if err := s.Validate(numStates); err != nil {
			var verr *fsm.ValidationError
			if errors.As(err, &verr) {
				verr.InState(i)
			}
			return err
		}
	}
	return nil
}

func isFraction(f float64) bool {
	return f >= 0 && f <= 1
}

// Equal reports whether both machines are structurally equal.
func (m *Machine) Equal(o *Machine) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.AllowedPaddingBytes != o.AllowedPaddingBytes ||
		m.MaxPaddingFrac != o.MaxPaddingFrac ||
		m.AllowedBlockedMicrosec != o.AllowedBlockedMicrosec ||
		m.MaxBlockingFrac != o.MaxBlockingFrac ||
		m.IncludeSmallPackets != o.IncludeSmallPackets ||
		len(m.States) != len(o.States) {
		return false
	}
	for i := range m.States {
		if !m.States[i].Equal(o.States[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the machine.
func (m *Machine) Clone() *Machine {
	res := *m
	res.States = make([]state.State, len(m.States))
	for i, s := range m.States {
		res.States[i] = s.Clone()
	}
	return &res
}

func (m *Machine) String() string {
	return fmt.Sprintf("Machine{states: %d, padding: %d bytes / %v, blocking: %dus / %v, small packets: %t}",
		len(m.States), m.AllowedPaddingBytes, m.MaxPaddingFrac,
		m.AllowedBlockedMicrosec, m.MaxBlockingFrac, m.IncludeSmallPackets)
}
