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
	"github.com/0xsoniclabs/padfsm/config"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/urfave/cli/v2"
)

// NameCommand prints the name of a machine.
var NameCommand = cli.Command{
	Action:    nameAction,
	Name:      "name",
	Usage:     "prints the name of a machine",
	ArgsUsage: "<machine>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
	},
	Description: `
The name command prints the name of the given machine, derived from
the SHA-256 digest of its canonical encoding.
`,
}

func nameAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	name, err := m.Name()
	if err != nil {
		return err
	}
	return printText(cfg, name)
}
