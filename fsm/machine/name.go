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
	"crypto/sha256"
	"encoding/hex"
)

// NameLength is the number of hex characters of a machine name.
const NameLength = 32

// Name returns the deterministic name of the machine, the first 32 hex
// characters of the SHA-256 of its canonical text form. It is recomputed
// on every call.
func (m *Machine) Name() (string, error) {
	text, err := m.Serialize()
	if err != nil {
		return "", err
	}
	return NameOf(text), nil
}

// NameOf returns the name of a machine given its canonical text form.
func NameOf(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:NameLength]
}
