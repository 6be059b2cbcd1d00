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

package utils

import (
	"github.com/urfave/cli/v2"
)

// command line flags shared by the padfsm commands
var (
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the result into the given file instead of stdout",
	}
	RegistryDbFlag = cli.PathFlag{
		Name:  "registry-db",
		Usage: "directory of the machine registry",
		Value: "padfsm-registry",
	}
	SqliteDbFlag = cli.StringFlag{
		Name:  "db",
		Usage: "export states and transitions into the given sqlite3 database",
	}
	TitleFlag = cli.StringFlag{
		Name:  "title",
		Usage: "title of the rendered transition graph",
		Value: "padding machine",
	}
	EventFlag = cli.StringFlag{
		Name:  "event",
		Usage: "event whose Markov chain is analysed",
		Value: "NonPaddingSent",
	}
	FormatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "output format of the transition graph, dot or html",
		Value: "dot",
	}
)
