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
	"math"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/dist"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/0xsoniclabs/padfsm/fsm/wire"
	"github.com/cockroachdb/errors"
)

// HeaderSize is the number of bytes preceding the encoded states,
// including the version tag.
const HeaderSize = 2 + 8 + 8 + 8 + 8 + 1 + 2

// MaxLayoutSize is the size of the largest layout a valid machine can have.
// Compressed input inflating beyond it is rejected.
const MaxLayoutSize = HeaderSize + fsm.StateMax*(3*dist.SerializedSize+state.FlagsSize+
	(fsm.StateMax+fsm.ReservedColumns)*8*int(event.NumEvents))

// Encode returns the uncompressed binary layout of the machine. The machine
// is not validated, only shapes that cannot be encoded are rejected.
func (m *Machine) Encode() ([]byte, error) {
	numStates := len(m.States)
	if numStates > math.MaxUint16 {
		return nil, errors.Newf("cannot encode %d states, at most %d fit the format", numStates, math.MaxUint16)
	}
	region, err := state.RegionSize(numStates)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + int(region))
	w := wire.NewWriter(&buf)
	if err := m.encodeHeader(w); err != nil {
		return nil, err
	}
	for i, s := range m.States {
		if err := s.Encode(w, numStates); err != nil {
			return nil, errors.Wrapf(err, "cannot encode state %d", i)
		}
	}
	return buf.Bytes(), nil
}

func (m *Machine) encodeHeader(w wire.Writer) error {
	if err := w.WriteUint16(fsm.Version); err != nil {
		return errors.Wrap(err, "cannot write version")
	}
	if err := w.WriteUint64(m.AllowedPaddingBytes); err != nil {
		return errors.Wrap(err, "cannot write allowed padding bytes")
	}
	if err := w.WriteFloat64(m.MaxPaddingFrac); err != nil {
		return errors.Wrap(err, "cannot write max padding fraction")
	}
	if err := w.WriteUint64(m.AllowedBlockedMicrosec); err != nil {
		return errors.Wrap(err, "cannot write allowed blocked microseconds")
	}
	if err := w.WriteFloat64(m.MaxBlockingFrac); err != nil {
		return errors.Wrap(err, "cannot write max blocking fraction")
	}
	if err := w.WriteBool(m.IncludeSmallPackets); err != nil {
		return errors.Wrap(err, "cannot write include small packets")
	}
	if err := w.WriteUint16(uint16(len(m.States))); err != nil {
		return errors.Wrap(err, "cannot write number of states")
	}
	return nil
}

// Serialize returns the canonical text form of the machine:
// lowercase hex of the zlib-compressed layout.
func (m *Machine) Serialize() (string, error) {
	layout, err := m.Encode()
	if err != nil {
		return "", err
	}
	return wire.EncodeText(layout)
}

// Parse decodes and validates a machine in its canonical text form.
func Parse(text string) (*Machine, error) {
	layout, err := wire.DecodeText(text, int64(MaxLayoutSize))
	if err != nil {
		return nil, err
	}
	return Decode(layout)
}

// Decode parses and validates an uncompressed binary layout.
func Decode(layout []byte) (*Machine, error) {
	r := wire.NewReader(layout)
	version, err := r.ReadUint16()
	if err != nil {
		return nil, fsm.WrapDecode(err, "cannot read version")
	}
	if version != fsm.Version {
		return nil, fsm.DecodeErrorf("unsupported version %d", version)
	}
	m, err := decodeV1(r)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeV1(r wire.Reader) (*Machine, error) {
	if r.Remaining() < HeaderSize-2 {
		return nil, fsm.DecodeErrorf("not enough data for version 1 machine, got %d bytes", r.Remaining())
	}
	var (
		m   Machine
		err error
	)
	if m.AllowedPaddingBytes, err = r.ReadUint64(); err != nil {
		return nil, fsm.WrapDecode(err, "cannot read allowed padding bytes")
	}
	if m.MaxPaddingFrac, err = r.ReadFloat64(); err != nil {
		return nil, fsm.WrapDecode(err, "cannot read max padding fraction")
	}
	if m.AllowedBlockedMicrosec, err = r.ReadUint64(); err != nil {
		return nil, fsm.WrapDecode(err, "cannot read allowed blocked microseconds")
	}
	if m.MaxBlockingFrac, err = r.ReadFloat64(); err != nil {
		return nil, fsm.WrapDecode(err, "cannot read max blocking fraction")
	}
	if m.IncludeSmallPackets, err = r.ReadBool(); err != nil {
		return nil, fsm.WrapDecode(err, "cannot read include small packets")
	}
	n, err := r.ReadUint16()
	if err != nil {
		return nil, fsm.WrapDecode(err, "cannot read number of states")
	}

	numStates := int(n)
	region, err := state.RegionSize(numStates)
	if err != nil {
		return nil, fsm.WrapDecode(err, "invalid number of states")
	}
	if remaining := uint64(r.Remaining()); remaining != region {
		return nil, fsm.DecodeErrorf("expected %d bytes for %d states, but got %d bytes", region, numStates, remaining)
	}

	m.States = make([]state.State, 0, numStates)
	for i := 0; i < numStates; i++ {
		s, err := state.Decode(r, numStates)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot decode state %d", i)
		}
		m.States = append(m.States, s)
	}
	return &m, nil
}

// MarshalText returns the canonical text form so that machines can be
// embedded in text documents.
func (m *Machine) MarshalText() ([]byte, error) {
	text, err := m.Serialize()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText parses and validates the canonical text form.
func (m *Machine) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
