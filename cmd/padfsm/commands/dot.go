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
	"github.com/0xsoniclabs/padfsm/fsm/visualizer"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/urfave/cli/v2"
)

// DotCommand renders the transition graph of a machine.
var DotCommand = cli.Command{
	Action:    dotAction,
	Name:      "dot",
	Usage:     "renders the transition graph of a machine",
	ArgsUsage: "<machine>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
		&utils.TitleFlag,
		&utils.FormatFlag,
	},
	Description: `
The dot command renders the transition graph of the given machine in
dot format, or as a web page displaying it with --format html.
`,
}

func dotAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}

	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	render := visualizer.Dot
	if cfg.Format == config.HtmlFormat {
		render = visualizer.HTML
	}
	text, err := render(m, cfg.Title)
	if err != nil {
		return err
	}
	return printText(cfg, text)
}
