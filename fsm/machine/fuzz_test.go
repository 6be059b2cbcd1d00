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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/wire"
	"github.com/cockroachdb/errors"
)

func FuzzParse(f *testing.F) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.hex"))
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(strings.TrimSpace(string(data)))
	}
	f.Add("")
	f.Add("789c")

	f.Fuzz(func(t *testing.T, text string) {
		m, err := Parse(text)
		if err != nil {
			if !errors.Is(err, fsm.ErrDecode) && !errors.Is(err, fsm.ErrValidation) {
				t.Fatalf("untyped error: %v", err)
			}
			return
		}
		checkReencodes(t, m)
	})
}

func FuzzDecode(f *testing.F) {
	for _, file := range []string{"noop", "padding", "mixed"} {
		data, err := os.ReadFile(filepath.Join("testdata", file+".hex"))
		if err != nil {
			f.Fatal(err)
		}
		layout, err := wire.DecodeText(strings.TrimSpace(string(data)), int64(MaxLayoutSize))
		if err != nil {
			f.Fatal(err)
		}
		f.Add(layout)
	}
	f.Add([]byte{1, 0})

	f.Fuzz(func(t *testing.T, layout []byte) {
		m, err := Decode(layout)
		if err != nil {
			if !errors.Is(err, fsm.ErrDecode) && !errors.Is(err, fsm.ErrValidation) {
				t.Fatalf("untyped error: %v", err)
			}
			return
		}
		checkReencodes(t, m)
	})
}

// checkReencodes verifies that a decoded machine is valid and survives
// another encoding round.
func checkReencodes(t *testing.T, m *Machine) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("decoded machine is invalid: %v", err)
	}
	layout, err := m.Encode()
	if err != nil {
		t.Fatalf("cannot encode decoded machine: %v", err)
	}
	again, err := Decode(layout)
	if err != nil {
		t.Fatalf("cannot decode re-encoded machine: %v", err)
	}
	if !m.Equal(again) {
		t.Fatalf("machine changed after re-encoding")
	}
}
