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

package commands

import (
	"fmt"

	"github.com/0xsoniclabs/padfsm/config"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/urfave/cli/v2"
)

// ValidateCommand checks a machine.
var ValidateCommand = cli.Command{
	Action:    validateAction,
	Name:      "validate",
	Usage:     "checks that a machine is well-formed",
	ArgsUsage: "<machine>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
	},
	Description: `
The validate command decodes the given machine and checks its
parameters, distributions and transition probabilities. The machine
is given as its hex encoding, a file holding it, or a YAML document.
On success it prints the name and a summary of the machine.
`,
}

func validateAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "padfsm-validate")

	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	name, err := m.Name()
	if err != nil {
		return err
	}
	log.Noticef("Machine %s is valid", name)
	return printText(cfg, fmt.Sprintf("%s %v", name, m))
}
