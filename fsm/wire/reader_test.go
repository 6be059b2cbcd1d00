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
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReader_ReadsWhatWriterWrote(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteUint16(math.MaxUint16))
	require.NoError(t, w.WriteUint64(math.MaxUint64))
	require.NoError(t, w.WriteFloat64(math.Copysign(0, -1)))
	require.NoError(t, w.WriteFloat64(0.123))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteUint8(9))
	require.NoError(t, w.WriteData([]byte("abc")))

	r := NewReader(buf.Bytes())
	assert.Equal(t, buf.Len(), r.Remaining())

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(math.MaxUint16), u16)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	f, err := r.ReadFloat64()
	require.NoError(t, err)
	assert.True(t, math.Signbit(f), "negative zero must keep its sign bit")

	f, err = r.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, 0.123, f)

	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(9), u8)

	data, err := r.ReadData(3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
	assert.Zero(t, r.Remaining())

	_, err = r.ReadUint8()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_ReadBoolRejectsOtherBytes(t *testing.T) {
	r := NewReader([]byte{0, 1, 2})
	v, err := r.ReadBool()
	require.NoError(t, err)
	assert.False(t, v)
	v, err = r.ReadBool()
	require.NoError(t, err)
	assert.True(t, v)
	_, err = r.ReadBool()
	assert.ErrorContains(t, err, "invalid boolean byte 2")
}

func TestReader_ShortData(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := r.ReadUint64()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = NewReader(nil).ReadUint16()
	require.ErrorIs(t, err, io.EOF)

	_, err = NewReader(nil).ReadData(-1)
	require.ErrorContains(t, err, "negative")
}

func TestReader_Read(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockErr := errors.New("mock error")
	tests := []struct {
		name    string
		wantErr error
		read    func(r *reader) error
		setup   func(m *MockReadBuffer)
	}{
		{
			name:    "ReadUint8_Success",
			wantErr: nil,
			read: func(r *reader) error {
				_, err := r.ReadUint8()
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().ReadByte().Return(uint8(3), nil)
			},
		},
		{
			name:    "ReadUint8_Error",
			wantErr: mockErr,
			read: func(r *reader) error {
				_, err := r.ReadUint8()
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().ReadByte().Return(uint8(0), mockErr)
			},
		},
		{
			name:    "ReadBool_Error",
			wantErr: mockErr,
			read: func(r *reader) error {
				_, err := r.ReadBool()
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().ReadByte().Return(uint8(0), mockErr)
			},
		},
		{
			name:    "ReadUint16_Error",
			wantErr: mockErr,
			read: func(r *reader) error {
				_, err := r.ReadUint16()
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().Read(gomock.Any()).MinTimes(1).Return(0, mockErr)
			},
		},
		{
			name:    "ReadUint64_Error",
			wantErr: mockErr,
			read: func(r *reader) error {
				_, err := r.ReadUint64()
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().Read(gomock.Any()).MinTimes(1).Return(0, mockErr)
			},
		},
		{
			name:    "ReadFloat64_Error",
			wantErr: mockErr,
			read: func(r *reader) error {
				_, err := r.ReadFloat64()
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().Read(gomock.Any()).MinTimes(1).Return(0, mockErr)
			},
		},
		{
			name:    "ReadData_Success",
			wantErr: nil,
			read: func(r *reader) error {
				_, err := r.ReadData(1)
				return err
			},
			setup: func(m *MockReadBuffer) {
				m.EXPECT().Read(gomock.Any()).MinTimes(1).Return(1, nil)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := NewMockReadBuffer(ctrl)
			test.setup(m)
			err := test.read(&reader{buffer: m})
			if test.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.wantErr)
		})
	}
}
