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

// Package state defines a single state of a padding machine together with
// its dense per-event transition vectors and their binary form.
package state

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/dist"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/wire"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// Sparse targets of the two reserved trailing columns of a transition vector.
// Their meaning belongs to the engine running the machine.
const (
	StateCancel = -1 // column numStates
	StateEnd    = -2 // column numStates+1
)

// FlagsSize is the number of flag bytes following the distributions.
const FlagsSize = 4

// State is one state of a machine. A vector in NextState has one entry per
// state of the machine followed by the two reserved columns; an event
// without transitions has no entry at all.
type State struct {
	Action                  dist.Dist
	ActionIsBlock           bool
	Limit                   dist.Dist
	LimitIncludesNonPadding bool
	Timeout                 dist.Dist
	Replace                 bool
	NextState               map[event.Event][]float64
}

// New expands sparse transitions, event -> target -> probability, into a
// state with dense vectors for a machine of numStates states. Targets are
// state indices, StateCancel or StateEnd. Events with no targets are left
// out. The expanded vectors are validated.
func New(transitions map[event.Event]map[int]float64, numStates int) (State, error) {
	if numStates < 0 {
		return State{}, errors.Newf("invalid number of states %d", numStates)
	}
	next := make(map[event.Event][]float64, len(transitions))
	for ev, targets := range transitions {
		if !ev.IsValid() {
			return State{}, errors.Newf("invalid event %v", ev)
		}
		if len(targets) == 0 {
			continue
		}
		vec := make([]float64, numStates+fsm.ReservedColumns)
		for target, p := range targets {
			col, err := Column(target, numStates)
			if err != nil {
				return State{}, errors.Wrapf(err, "event %v", ev)
			}
			vec[col] = p
		}
		next[ev] = vec
	}
	s := State{NextState: next}
	if err := s.ValidateTransitions(numStates); err != nil {
		return State{}, err
	}
	return s, nil
}

// Column returns the vector column of a sparse target.
func Column(target, numStates int) (int, error) {
	switch {
	case target == StateCancel:
		return numStates, nil
	case target == StateEnd:
		return numStates + 1, nil
	case target >= 0 && target < numStates:
		return target, nil
	}
	return 0, errors.Newf("target %d out of range for %d states", target, numStates)
}

// Target returns the sparse target of a vector column; it is the inverse of Column.
func Target(column, numStates int) int {
	switch column {
	case numStates:
		return StateCancel
	case numStates + 1:
		return StateEnd
	}
	return column
}

// FormatTarget renders a target as its index or as "cancel" or "end".
func FormatTarget(target int) string {
	switch target {
	case StateCancel:
		return "cancel"
	case StateEnd:
		return "end"
	}
	return strconv.Itoa(target)
}

// ParseTarget is the inverse of FormatTarget.
func ParseTarget(s string) (int, error) {
	switch strings.ToLower(s) {
	case "cancel":
		return StateCancel, nil
	case "end":
		return StateEnd, nil
	}
	target, err := strconv.Atoi(s)
	if err != nil || target < 0 {
		return 0, errors.Newf("invalid target %q, expected a state index, cancel or end", s)
	}
	return target, nil
}

// TargetLess orders targets by their column: states first, then cancel and end.
func TargetLess(a, b int) bool {
	if (a < 0) != (b < 0) {
		return b < 0
	}
	if a < 0 {
		return a > b
	}
	return a < b
}

// SortTargets sorts targets in column order.
func SortTargets(targets []int) {
	sort.Slice(targets, func(i, j int) bool {
		return TargetLess(targets[i], targets[j])
	})
}

// Targets returns the non-zero entries of the vector of an event keyed by
// sparse target, or nil if the event has no transitions.
func (s State) Targets(ev event.Event) map[int]float64 {
	vec, found := s.NextState[ev]
	if !found {
		return nil
	}
	numStates := len(vec) - fsm.ReservedColumns
	res := make(map[int]float64)
	for col, p := range vec {
		if p != 0 {
			res[Target(col, numStates)] = p
		}
	}
	return res
}

// ValidateTransitions checks the shape and probability mass of every
// transition vector for a machine of numStates states.
func (s State) ValidateTransitions(numStates int) error {
	for ev := range s.NextState {
		if !ev.IsValid() {
			return fsm.Invalid("next_state", ev, "invalid event %v", ev)
		}
	}
	want := numStates + fsm.ReservedColumns
	for _, ev := range event.Events() {
		vec, found := s.NextState[ev]
		if !found {
			continue
		}
		if len(vec) != want {
			return fsm.Invalid("next_state", len(vec), "expected vector of length %d, got %d", want, len(vec)).OnEvent(ev)
		}
		for col, p := range vec {
			if !(p >= 0 && p <= 1) {
				return fsm.Invalid("next_state", p, "found probability %v in column %d, has to be [0.0, 1.0]", p, col).OnEvent(ev)
			}
		}
		if total := floats.Sum(vec); total <= 0 || total > 1+fsm.ProbabilityEps {
			return fsm.Invalid("next_state", total, "found invalid total probability %v, must be (0.0, 1.0]", total).OnEvent(ev)
		}
	}
	return nil
}

// Validate checks the transitions and the three distributions of the state.
func (s State) Validate(numStates int) error {
	if err := s.ValidateTransitions(numStates); err != nil {
		return err
	}
	for _, d := range []struct {
		field string
		dist  dist.Dist
	}{
		{"action", s.Action},
		{"limit", s.Limit},
		{"timeout", s.Timeout},
	} {
		if err := d.dist.Validate(); err != nil {
			var verr *fsm.ValidationError
			if errors.As(err, &verr) {
				verr.Field = d.field
			}
			return err
		}
	}
	return nil
}

// EncodedSize returns the number of bytes of an encoded state of a machine
// with numStates states. Overflow is reported instead of wrapped.
func EncodedSize(numStates int) (uint64, error) {
	if numStates < 0 {
		return 0, errors.Newf("invalid number of states %d", numStates)
	}
	columns, carry := bits.Add64(uint64(numStates), fsm.ReservedColumns, 0)
	if carry != 0 {
		return 0, errors.Newf("state size overflows for %d states", numStates)
	}
	hi, matrix := bits.Mul64(columns, 8*uint64(event.NumEvents))
	if hi != 0 {
		return 0, errors.Newf("state size overflows for %d states", numStates)
	}
	size, carry := bits.Add64(matrix, 3*dist.SerializedSize+FlagsSize, 0)
	if carry != 0 {
		return 0, errors.Newf("state size overflows for %d states", numStates)
	}
	return size, nil
}

// RegionSize returns the number of bytes of numStates encoded states.
func RegionSize(numStates int) (uint64, error) {
	size, err := EncodedSize(numStates)
	if err != nil {
		return 0, err
	}
	hi, total := bits.Mul64(size, uint64(numStates))
	if hi != 0 {
		return 0, errors.Newf("state region size overflows for %d states", numStates)
	}
	return total, nil
}

// Encode writes the state for a machine of numStates states. Absent events
// are written as all-zero vectors.
func (s State) Encode(w wire.Writer, numStates int) error {
	for _, d := range []struct {
		field string
		dist  dist.Dist
	}{
		{"action", s.Action},
		{"limit", s.Limit},
		{"timeout", s.Timeout},
	} {
		if err := d.dist.Encode(w); err != nil {
			return errors.Wrapf(err, "cannot write %s", d.field)
		}
	}
	for _, flag := range []bool{s.ActionIsBlock, s.LimitIncludesNonPadding, s.Replace} {
		if err := w.WriteBool(flag); err != nil {
			return errors.Wrap(err, "cannot write state flag")
		}
	}
	if err := w.WriteUint8(0); err != nil {
		return errors.Wrap(err, "cannot write reserved flag")
	}

	zeros := make([]float64, numStates+fsm.ReservedColumns)
	for _, ev := range event.Events() {
		vec, found := s.NextState[ev]
		if !found {
			vec = zeros
		}
		if len(vec) != len(zeros) {
			return errors.Newf("vector of event %v has length %d, expected %d", ev, len(vec), len(zeros))
		}
		for _, p := range vec {
			if err := w.WriteFloat64(p); err != nil {
				return errors.Wrapf(err, "cannot write transitions of event %v", ev)
			}
		}
	}
	return nil
}

// Decode reads a state written by Encode. A vector is taken as present
// when any of its entries is non-zero. The result is not validated.
func Decode(r wire.Reader, numStates int) (State, error) {
	var (
		s   State
		err error
	)
	for _, d := range []struct {
		field string
		dist  *dist.Dist
	}{
		{"action", &s.Action},
		{"limit", &s.Limit},
		{"timeout", &s.Timeout},
	} {
		if *d.dist, err = dist.Decode(r); err != nil {
			return State{}, errors.Wrapf(err, "cannot read %s", d.field)
		}
	}
	for _, flag := range []*bool{&s.ActionIsBlock, &s.LimitIncludesNonPadding, &s.Replace} {
		if *flag, err = r.ReadBool(); err != nil {
			return State{}, fsm.WrapDecode(err, "cannot read state flag")
		}
	}
	if _, err = r.ReadUint8(); err != nil {
		return State{}, fsm.WrapDecode(err, "cannot read reserved flag")
	}

	s.NextState = make(map[event.Event][]float64)
	for _, ev := range event.Events() {
		vec := make([]float64, numStates+fsm.ReservedColumns)
		present := false
		for i := range vec {
			if vec[i], err = r.ReadFloat64(); err != nil {
				return State{}, fsm.WrapDecode(err, "cannot read transitions of event %v", ev)
			}
			present = present || vec[i] != 0
		}
		if present {
			s.NextState[ev] = vec
		}
	}
	return s, nil
}

// Equal reports whether both states hold the same distributions, flags and
// transitions. A nil and an empty NextState are equal.
func (s State) Equal(o State) bool {
	if !s.Action.Equal(o.Action) || !s.Limit.Equal(o.Limit) || !s.Timeout.Equal(o.Timeout) ||
		s.ActionIsBlock != o.ActionIsBlock ||
		s.LimitIncludesNonPadding != o.LimitIncludesNonPadding ||
		s.Replace != o.Replace ||
		len(s.NextState) != len(o.NextState) {
		return false
	}
	for ev, vec := range s.NextState {
		other, found := o.NextState[ev]
		if !found || !floats.Equal(vec, other) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	res := s
	if s.NextState != nil {
		res.NextState = make(map[event.Event][]float64, len(s.NextState))
		for ev, vec := range s.NextState {
			res.NextState[ev] = append([]float64(nil), vec...)
		}
	}
	return res
}

func (s State) String() string {
	return fmt.Sprintf("State{action: %v, limit: %v, timeout: %v, events: %d}", s.Action, s.Limit, s.Timeout, len(s.NextState))
}
