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

// Package commands implements the sub-commands of the padfsm tool.
package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/0xsoniclabs/padfsm/config"
	"github.com/0xsoniclabs/padfsm/fsm/authoring"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/cockroachdb/errors"
)

// loadMachine reads a machine given on the command line. The argument is
// either the canonical encoding itself, a file holding it, or a YAML
// machine document ending in .yaml or .yml.
func loadMachine(arg string) (*machine.Machine, error) {
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		m, perr := machine.Parse(strings.TrimSpace(arg))
		if perr != nil {
			return nil, errors.Wrap(perr, "argument is neither a file nor a valid machine")
		}
		return m, nil
	}

	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return authoring.LoadFile(arg)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", arg)
	}
	m, err := machine.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", arg)
	}
	return m, nil
}

// newPrinters directs the text produced by f to the output file of the
// configuration, or to the console if there is none.
func newPrinters(cfg *config.Config, f func() string) *utils.Printers {
	ps := utils.NewPrinters()
	if cfg.Output != "" {
		return ps.AddPrinterToFile(cfg.Output, f)
	}
	return ps.AddPrinterToConsole(false, f)
}

// printText writes text once to the configured output.
func printText(cfg *config.Config, text string) error {
	text = strings.TrimRight(text, "\n")
	ps := newPrinters(cfg, func() string {
		return text
	})
	defer ps.Close()
	return ps.Print()
}
