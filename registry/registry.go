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

// Package registry stores padding machines in a LevelDB database under
// their names. Entries hold the canonical text form of a machine.
package registry

import (
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// MachinePrefix is the key prefix of stored machines.
const MachinePrefix = "pm"

var (
	// ErrNotFound is returned for names without a stored machine.
	ErrNotFound = errors.New("machine not found")

	// ErrIntegrity is returned when a stored machine does not match its name.
	ErrIntegrity = errors.New("machine does not match its name")
)

// Registry is a content-addressed store of machines. It is safe for
// concurrent use.
type Registry struct {
	db  *leveldb.DB
	log logger.Logger
}

// Open opens or creates a registry in the given directory.
func Open(path string, log logger.Logger) (*Registry, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open registry %s", path)
	}
	log.Debugf("opened registry %s", path)
	return &Registry{db: db, log: log}, nil
}

// OpenInMemory creates a registry that is discarded on Close.
func OpenInMemory(log logger.Logger) (*Registry, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open in-memory registry")
	}
	return &Registry{db: db, log: log}, nil
}

func machineKey(name string) []byte {
	return []byte(MachinePrefix + name)
}

// Put validates and stores a machine and returns its name. Storing a
// machine twice is a no-op.
func (r *Registry) Put(m *machine.Machine) (string, error) {
	if err := m.Validate(); err != nil {
		return "", errors.Wrap(err, "cannot store invalid machine")
	}
	text, err := m.Serialize()
	if err != nil {
		return "", err
	}
	name := machine.NameOf(text)
	if err := r.db.Put(machineKey(name), []byte(text), nil); err != nil {
		return "", errors.Wrapf(err, "cannot store machine %s", name)
	}
	r.log.Debugf("stored machine %s (%d states)", name, len(m.States))
	return name, nil
}

// Get returns the machine stored under name after checking that the name
// of the stored text matches.
func (r *Registry) Get(name string) (*machine.Machine, error) {
	data, err := r.db.Get(machineKey(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "name %s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read machine %s", name)
	}
	m, err := machine.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse machine %s", name)
	}
	if got := machine.NameOf(string(data)); got != name {
		r.log.Warningf("machine stored as %s is named %s", name, got)
		return nil, errors.Wrapf(ErrIntegrity, "stored as %s, named %s", name, got)
	}
	return m, nil
}

// Has reports whether a machine is stored under name.
func (r *Registry) Has(name string) (bool, error) {
	found, err := r.db.Has(machineKey(name), nil)
	if err != nil {
		return false, errors.Wrapf(err, "cannot look up machine %s", name)
	}
	return found, nil
}

// Names returns the names of all stored machines in ascending order.
func (r *Registry) Names() ([]string, error) {
	iter := r.db.NewIterator(util.BytesPrefix([]byte(MachinePrefix)), nil)
	defer iter.Release()

	names := []string{}
	for iter.Next() {
		names = append(names, string(iter.Key()[len(MachinePrefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "cannot iterate registry")
	}
	return names, nil
}

// Delete removes the machine stored under name.
func (r *Registry) Delete(name string) error {
	found, err := r.Has(name)
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "name %s", name)
	}
	if err := r.db.Delete(machineKey(name), nil); err != nil {
		return errors.Wrapf(err, "cannot delete machine %s", name)
	}
	r.log.Debugf("deleted machine %s", name)
	return nil
}

// Close releases the database.
func (r *Registry) Close() error {
	return r.db.Close()
}
