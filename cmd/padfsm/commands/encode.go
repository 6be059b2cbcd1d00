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
	"github.com/0xsoniclabs/padfsm/fsm/authoring"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/urfave/cli/v2"
)

// EncodeCommand turns a YAML machine document into its canonical encoding.
var EncodeCommand = cli.Command{
	Action:    encodeAction,
	Name:      "encode",
	Usage:     "encodes a YAML machine document",
	ArgsUsage: "<machine.yaml>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
	},
	Description: `
The encode command loads a machine from a YAML document, validates it
and prints its canonical hex encoding.
`,
}

func encodeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "padfsm-encode")

	m, err := authoring.LoadFile(cfg.Args[0])
	if err != nil {
		return err
	}
	text, err := m.Serialize()
	if err != nil {
		return err
	}
	log.Infof("Encoded %d states into %d characters", len(m.States), len(text))
	return printText(cfg, text)
}
