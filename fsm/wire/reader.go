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

package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// NewReader creates a little-endian Reader over a complete in-memory layout.
func NewReader(data []byte) Reader {
	return &reader{buffer: bytes.NewReader(data)}
}

//go:generate mockgen -source reader.go -destination reader_mock.go -package wire

type Reader interface {
	// ReadUint8 reads a single byte.
	ReadUint8() (uint8, error)
	// ReadBool reads a single byte that must be 0 or 1.
	ReadBool() (bool, error)
	// ReadUint16 reads a little-endian encoded uint16 value.
	ReadUint16() (uint16, error)
	// ReadUint64 reads a little-endian encoded uint64 value.
	ReadUint64() (uint64, error)
	// ReadFloat64 reads a little-endian encoded IEEE-754 double.
	ReadFloat64() (float64, error)
	// ReadData reads a byte slice of given size.
	ReadData(size int) ([]byte, error)
	// Remaining returns the number of unread bytes.
	Remaining() int
}

// ReadBuffer is a wrapper around necessary interfaces for reading a layout for mocking purposes.
type ReadBuffer interface {
	io.Reader
	io.ByteReader
	Len() int
}

type reader struct {
	buffer ReadBuffer
}

func (r *reader) ReadUint8() (uint8, error) {
	b, err := r.buffer.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "cannot read uint8")
	}
	return b, nil
}

func (r *reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.Newf("invalid boolean byte %d", b)
}

func (r *reader) ReadUint16() (uint16, error) {
	data, err := r.ReadData(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

func (r *reader) ReadUint64() (uint64, error) {
	data, err := r.ReadData(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

func (r *reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *reader) ReadData(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Newf("cannot read negative number of bytes (%d)", size)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r.buffer, data); err != nil {
		return nil, errors.Wrapf(err, "cannot read %d bytes", size)
	}
	return data, nil
}

func (r *reader) Remaining() int {
	return r.buffer.Len()
}
