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
	"strings"

	"github.com/0xsoniclabs/padfsm/config"
	"github.com/0xsoniclabs/padfsm/fsm/authoring"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/urfave/cli/v2"
)

// DecodeCommand prints a machine as a YAML document.
var DecodeCommand = cli.Command{
	Action:    decodeAction,
	Name:      "decode",
	Usage:     "prints a machine as a YAML document",
	ArgsUsage: "<machine>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
	},
	Description: `
The decode command prints the given machine as a YAML document listing
only the transitions with a positive probability. Encoding the document
again yields the same machine.
`,
}

func decodeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	var doc strings.Builder
	if err := authoring.Dump(&doc, m); err != nil {
		return err
	}
	return printText(cfg, doc.String())
}
