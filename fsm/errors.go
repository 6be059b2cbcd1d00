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

package fsm

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDecode marks every failure to turn an encoded machine back into a value.
	ErrDecode = errors.New("decode error")

	// ErrValidation marks every violated machine invariant.
	ErrValidation = errors.New("validation error")
)

// NoState is the State of a ValidationError that is not about a single state.
const NoState = -1

// ValidationError describes which invariant failed and where.
type ValidationError struct {
	Field  string // offending field, e.g. "max_padding_frac" or "action"
	State  int    // index of the offending state, or NoState
	Event  string // offending event, or empty
	Value  any    // offending value
	Reason string
}

// Invalid creates a validation error for the given field and value.
func Invalid(field string, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		State:  NoState,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

// InState records the index of the state the error belongs to.
func (e *ValidationError) InState(i int) *ValidationError {
	e.State = i
	return e
}

// OnEvent records the event whose transition vector the error belongs to.
func (e *ValidationError) OnEvent(event fmt.Stringer) *ValidationError {
	e.Event = event.String()
	return e
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.State != NoState {
		fmt.Fprintf(&b, "state %d: ", e.State)
	}
	if e.Event != "" {
		fmt.Fprintf(&b, "event %s: ", e.Event)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Reason)
	return b.String()
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DecodeErrorf creates an error marked as ErrDecode.
func DecodeErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrDecode)
}

// WrapDecode wraps err with a message and marks it as ErrDecode.
func WrapDecode(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrDecode)
}
