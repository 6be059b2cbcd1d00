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
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// NewWriter creates a little-endian Writer on top of the given buffer.
func NewWriter(buffer WriteBuffer) Writer {
	return &writer{buffer: buffer}
}

//go:generate mockgen -source writer.go -destination writer_mock.go -package wire

type Writer interface {
	// WriteUint8 writes a single byte.
	WriteUint8(v uint8) error
	// WriteBool writes a single byte holding 0 or 1.
	WriteBool(v bool) error
	// WriteUint16 writes a little-endian encoded uint16 value.
	WriteUint16(v uint16) error
	// WriteUint64 writes a little-endian encoded uint64 value.
	WriteUint64(v uint64) error
	// WriteFloat64 writes the IEEE-754 bits of v in little-endian order.
	WriteFloat64(v float64) error
	// WriteData writes a byte slice of any size.
	WriteData(data []byte) error
}

// WriteBuffer is a wrapper around necessary interfaces for writing a layout for mocking purposes.
type WriteBuffer interface {
	io.Writer
	io.ByteWriter
}

type writer struct {
	buffer WriteBuffer
	tmp    [8]byte
}

func (w *writer) WriteUint8(v uint8) error {
	if err := w.buffer.WriteByte(v); err != nil {
		return errors.Wrap(err, "error writing uint8 to buffer")
	}
	return nil
}

func (w *writer) WriteBool(v bool) error {
	if v {
		return w.WriteUint8(1)
	}
	return w.WriteUint8(0)
}

func (w *writer) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(w.tmp[:2], v)
	if _, err := w.buffer.Write(w.tmp[:2]); err != nil {
		return errors.Wrap(err, "error writing uint16 to buffer")
	}
	return nil
}

func (w *writer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(w.tmp[:], v)
	if _, err := w.buffer.Write(w.tmp[:]); err != nil {
		return errors.Wrap(err, "error writing uint64 to buffer")
	}
	return nil
}

func (w *writer) WriteFloat64(v float64) error {
	binary.LittleEndian.PutUint64(w.tmp[:], math.Float64bits(v))
	if _, err := w.buffer.Write(w.tmp[:]); err != nil {
		return errors.Wrap(err, "error writing float64 to buffer")
	}
	return nil
}

func (w *writer) WriteData(data []byte) error {
	if _, err := w.buffer.Write(data); err != nil {
		return errors.Wrap(err, "error writing []byte to buffer")
	}
	return nil
}
