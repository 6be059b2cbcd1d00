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

package main

import (
	"log"
	"os"

	"github.com/0xsoniclabs/padfsm/cmd/padfsm/commands"
	"github.com/0xsoniclabs/padfsm/config"
	"github.com/urfave/cli/v2"
)

// PadfsmApp data structure
var PadfsmApp = cli.App{
	Name:      "Padding Machines",
	HelpName:  "padfsm",
	Usage:     "validate, encode, inspect and store padding machines",
	Version:   config.Version + "-" + config.GitCommit,
	Copyright: "(c) 2026 Sonic Labs",
	Commands: []*cli.Command{
		&commands.ValidateCommand,
		&commands.NameCommand,
		&commands.InspectCommand,
		&commands.EncodeCommand,
		&commands.DecodeCommand,
		&commands.DotCommand,
		&commands.AnalyzeCommand,
		&commands.RegistryCommand,
	},
}

// main implements the padfsm tool
func main() {
	if err := PadfsmApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
