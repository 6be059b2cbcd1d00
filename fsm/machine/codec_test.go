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
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/0xsoniclabs/padfsm/fsm/wire"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Fixtures(t *testing.T) {
	tests := []struct {
		fixture string
		want    func(t *testing.T) *Machine
		size    int
	}{
		{"noop", noopMachine, 335},
		{"padding", paddingMachine, 335},
		{"blocking", blockingMachine, 335},
		{"mixed", mixedMachine, 761},
		{"states100", hundredStateMachine, 663437},
	}
	for _, test := range tests {
		t.Run(test.fixture, func(t *testing.T) {
			text := readFixture(t, test.fixture)
			want := test.want(t)
			require.NoError(t, want.Validate())

			got, err := Parse(text)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)

			layout, err := wire.DecodeText(text, int64(MaxLayoutSize))
			require.NoError(t, err)
			encoded, err := want.Encode()
			require.NoError(t, err)
			assert.Len(t, encoded, test.size)
			assert.True(t, bytes.Equal(layout, encoded), "layout differs from fixture")
		})
	}
}

func TestParse_Noop(t *testing.T) {
	m, err := Parse(readFixture(t, "noop"))
	require.NoError(t, err)

	assert.Zero(t, m.AllowedPaddingBytes)
	assert.Zero(t, m.AllowedBlockedMicrosec)
	assert.Zero(t, m.MaxPaddingFrac)
	assert.Zero(t, m.MaxBlockingFrac)
	assert.False(t, m.IncludeSmallPackets)
	require.Len(t, m.States, 1)

	s := m.States[0]
	assert.False(t, s.Replace)
	assert.False(t, s.LimitIncludesNonPadding)
	assert.False(t, s.ActionIsBlock)
	assert.True(t, s.Action.IsNone())
	assert.True(t, s.Limit.IsNone())
	assert.True(t, s.Timeout.IsNone())
	assert.Zero(t, s.Action)
	assert.Zero(t, s.Limit)
	assert.Zero(t, s.Timeout)
	assert.Empty(t, s.NextState)
}

func TestMachine_SerializeRoundTrip(t *testing.T) {
	for name, build := range map[string]func(*testing.T) *Machine{
		"noop":      noopMachine,
		"padding":   paddingMachine,
		"blocking":  blockingMachine,
		"mixed":     mixedMachine,
		"two state": twoStateMachine,
		"hundred":   hundredStateMachine,
	} {
		t.Run(name, func(t *testing.T) {
			m := build(t)
			text, err := m.Serialize()
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(text), text)

			got, err := Parse(text)
			require.NoError(t, err)
			assert.True(t, m.Equal(got))
		})
	}
}

func TestMachine_RoundTripAtStateMax(t *testing.T) {
	if testing.Short() {
		t.Skip("large machine")
	}
	m := machineWithStates(fsm.StateMax)
	last := newState(t, map[event.Event]map[int]float64{
		event.PaddingSent:  {fsm.StateMax - 1: 0.5, state.StateEnd: 0.5},
		event.UpdateMTU:    {0: 1},
		event.LimitReached: {state.StateCancel: 1},
	}, fsm.StateMax)
	m.States[fsm.StateMax-1] = last

	layout, err := m.Encode()
	require.NoError(t, err)
	assert.Len(t, layout, MaxLayoutSize)

	text, err := m.Serialize()
	require.NoError(t, err)
	got, err := Parse(text)
	require.NoError(t, err)
	assert.True(t, m.Equal(got))
}

// layoutOf returns the uncompressed layout of a fixture machine.
func layoutOf(t *testing.T, m *Machine) []byte {
	t.Helper()
	layout, err := m.Encode()
	require.NoError(t, err)
	return layout
}

func TestDecode_VersionGate(t *testing.T) {
	for _, version := range []uint16{0, 2, 0x100, math.MaxUint16} {
		layout := layoutOf(t, paddingMachine(t))
		binary.LittleEndian.PutUint16(layout, version)

		_, err := Decode(layout)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version")
		assert.True(t, errors.Is(err, fsm.ErrDecode))

		text, err := wire.EncodeText(layout)
		require.NoError(t, err)
		_, err = Parse(text)
		assert.ErrorContains(t, err, "unsupported version")
	}
}

func TestDecode_LengthMismatch(t *testing.T) {
	tests := []struct {
		name   string
		modify func(layout []byte) []byte
	}{
		{"extra byte", func(layout []byte) []byte { return append(layout, 0) }},
		{"missing byte", func(layout []byte) []byte { return layout[:len(layout)-1] }},
		{"only header", func(layout []byte) []byte { return layout[:HeaderSize] }},
		{"more states declared", func(layout []byte) []byte {
			binary.LittleEndian.PutUint16(layout[HeaderSize-2:], 3)
			return layout
		}},
		{"fewer states declared", func(layout []byte) []byte {
			binary.LittleEndian.PutUint16(layout[HeaderSize-2:], 1)
			return layout
		}},
		{"many states declared", func(layout []byte) []byte {
			binary.LittleEndian.PutUint16(layout[HeaderSize-2:], math.MaxUint16)
			return layout
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			layout := test.modify(layoutOf(t, mixedMachine(t)))
			_, err := Decode(layout)
			require.ErrorContains(t, err, "bytes for")
			assert.True(t, errors.Is(err, fsm.ErrDecode))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	padding := layoutOf(t, paddingMachine(t))
	tests := []struct {
		name    string
		layout  []byte
		wantErr string
	}{
		{"empty", nil, "cannot read version"},
		{"one byte", []byte{1}, "cannot read version"},
		{"only version", []byte{1, 0}, "not enough data for version 1 machine"},
		{"truncated header", padding[:HeaderSize-1], "not enough data for version 1 machine"},
		{"non-boolean flag", func() []byte {
			layout := bytes.Clone(padding)
			layout[HeaderSize-3] = 2
			return layout
		}(), "cannot read include small packets"},
		{"unknown distribution", func() []byte {
			layout := bytes.Clone(padding)
			layout[HeaderSize] = 11
			return layout
		}(), "cannot decode state 0: cannot read action: unknown distribution kind 11"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := Decode(test.layout)
			require.ErrorContains(t, err, test.wantErr)
			assert.True(t, errors.Is(err, fsm.ErrDecode))
			assert.Nil(t, m)
		})
	}
}

func TestDecode_ZeroStates(t *testing.T) {
	layout := layoutOf(t, paddingMachine(t))[:HeaderSize]
	binary.LittleEndian.PutUint16(layout[HeaderSize-2:], 0)

	_, err := Decode(layout)
	require.ErrorContains(t, err, "a machine must have at least one state")
	assert.True(t, errors.Is(err, fsm.ErrValidation))
	assert.False(t, errors.Is(err, fsm.ErrDecode))
}

func TestDecode_ValidatesLast(t *testing.T) {
	m := paddingMachine(t)
	m.MaxPaddingFrac = 1.5
	text, err := m.Serialize()
	require.NoError(t, err)

	got, err := Parse(text)
	require.EqualError(t, err, "max_padding_frac: has to be [0.0, 1.0], got 1.5")
	assert.True(t, errors.Is(err, fsm.ErrValidation))
	assert.Nil(t, got)
}

func TestParse_EnvelopeErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{"not hex", "789cxyz", "failed to decode hex"},
		{"odd length", "789", "failed to decode hex"},
		{"not zlib", "00112233", "not in zlib format"},
		{"empty", "", "not in zlib format"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.text)
			require.ErrorContains(t, err, test.wantErr)
			assert.True(t, errors.Is(err, fsm.ErrDecode))
		})
	}
}

func TestParse_RejectsOversizedStream(t *testing.T) {
	text, err := wire.EncodeText(make([]byte, MaxLayoutSize+1))
	require.NoError(t, err)
	_, err = Parse(text)
	assert.ErrorContains(t, err, "inflated data exceeds")
}

func TestMachine_EncodeRejectsUnencodableShapes(t *testing.T) {
	_, err := machineWithStates(math.MaxUint16 + 1).Encode()
	assert.ErrorContains(t, err, "cannot encode 65536 states")

	m := mixedMachine(t)
	m.States[1].NextState[event.PaddingSent] = []float64{1}
	_, err = m.Serialize()
	assert.ErrorContains(t, err, "cannot encode state 1")

	_, err = m.Name()
	assert.Error(t, err)
}

func TestMachine_SerializeDoesNotValidate(t *testing.T) {
	m := paddingMachine(t)
	m.MaxBlockingFrac = -1
	_, err := m.Serialize()
	assert.NoError(t, err)
}

func TestMachine_TextMarshalling(t *testing.T) {
	type document struct {
		Machine *Machine `json:"machine"`
	}
	doc := document{Machine: mixedMachine(t)}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	text, err := doc.Machine.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"machine":"`+text+`"}`, string(data))

	var got document
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, doc.Machine.Equal(got.Machine))

	err = json.Unmarshal([]byte(`{"machine":"deadbeef"}`), &got)
	assert.Error(t, err)
}
