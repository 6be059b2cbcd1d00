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

package authoring

import (
	"io"
	"os"

	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML document and returns the validated machine it describes.
// Unknown fields are rejected.
func Load(r io.Reader) (*machine.Machine, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "cannot parse machine document")
	}
	m, err := doc.Machine()
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads a machine document from a file.
func LoadFile(path string) (*machine.Machine, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %s", path)
	}
	defer file.Close()
	m, err := Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %s", path)
	}
	return m, nil
}

// Dump writes the machine as a YAML document.
func Dump(w io.Writer, m *machine.Machine) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(m)); err != nil {
		return errors.Wrap(err, "cannot write machine document")
	}
	return enc.Close()
}
