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

// Package event defines the events that drive a padding machine. The order
// of the events is part of the binary machine format.
package event

import (
	"fmt"
	"strings"
)

// Event is an observable network or machine event.
type Event uint8

// Events in wire order.
const (
	NonPaddingRecv Event = iota
	PaddingRecv
	NonPaddingSent
	PaddingSent
	BlockingBegin
	BlockingEnd
	LimitReached
	UpdateMTU

	// Adding an event changes the binary format and requires a new version.

	NumEvents
)

// eventText translates events to their names.
var eventText = [NumEvents]string{
	NonPaddingRecv: "NonPaddingRecv",
	PaddingRecv:    "PaddingRecv",
	NonPaddingSent: "NonPaddingSent",
	PaddingSent:    "PaddingSent",
	BlockingBegin:  "BlockingBegin",
	BlockingEnd:    "BlockingEnd",
	LimitReached:   "LimitReached",
	UpdateMTU:      "UpdateMTU",
}

// Events returns all events in wire order.
func Events() []Event {
	events := make([]Event, NumEvents)
	for i := range events {
		events[i] = Event(i)
	}
	return events
}

// IsValid reports whether e is a known event.
func (e Event) IsValid() bool {
	return e < NumEvents
}

func (e Event) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
	return eventText[e]
}

// Parse finds the event for a name; the comparison ignores case.
func Parse(name string) (Event, error) {
	for i, text := range eventText {
		if strings.EqualFold(text, name) {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event %q", name)
}

// MarshalText encodes the event by name.
func (e Event) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid event %d", uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText decodes an event from its name.
func (e *Event) UnmarshalText(text []byte) error {
	ev, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = ev
	return nil
}
