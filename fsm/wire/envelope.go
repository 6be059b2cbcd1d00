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
	"encoding/hex"
	"io"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zlib"
)

// Compress deflates a layout into a zlib stream.
func Compress(layout []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(layout); err != nil {
		return nil, errors.Wrap(err, "cannot compress layout")
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "cannot finish zlib stream")
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream. Streams inflating to more than limit
// bytes are rejected.
func Decompress(compressed []byte, limit int64) (data []byte, err error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fsm.WrapDecode(err, "not in zlib format")
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil && err == nil {
			data, err = nil, fsm.WrapDecode(cerr, "cannot close zlib stream")
		}
	}()
	data, err = io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, fsm.WrapDecode(err, "cannot inflate zlib stream")
	}
	if int64(len(data)) > limit {
		return nil, fsm.DecodeErrorf("inflated data exceeds %d bytes", limit)
	}
	return data, nil
}

// EncodeText turns a layout into its canonical text form: hex(zlib(layout)).
func EncodeText(layout []byte) (string, error) {
	compressed, err := Compress(layout)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(compressed), nil
}

// DecodeText reverses EncodeText.
func DecodeText(text string, limit int64) ([]byte, error) {
	compressed, err := hex.DecodeString(text)
	if err != nil {
		return nil, fsm.WrapDecode(err, "failed to decode hex")
	}
	return Decompress(compressed, limit)
}
