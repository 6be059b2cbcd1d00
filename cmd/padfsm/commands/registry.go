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
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/registry"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/urfave/cli/v2"
)

var registryFlags = []cli.Flag{
	&logger.LogLevelFlag,
	&utils.OutputFlag,
	&utils.RegistryDbFlag,
}

// RegistryCommand groups the commands managing the machine registry.
var RegistryCommand = cli.Command{
	Name:  "registry",
	Usage: "stores machines under their names",
	Subcommands: []*cli.Command{
		&registryPutCommand,
		&registryGetCommand,
		&registryListCommand,
		&registryDeleteCommand,
	},
	Description: `
The registry commands keep machines in a LevelDB database, each stored
under its name. A machine read back is checked against its name.
`,
}

var registryPutCommand = cli.Command{
	Action:    registryAction(config.OneArg, putAction),
	Name:      "put",
	Usage:     "stores a machine and prints its name",
	ArgsUsage: "<machine>",
	Flags:     registryFlags,
}

var registryGetCommand = cli.Command{
	Action:    registryAction(config.OneArg, getAction),
	Name:      "get",
	Usage:     "prints the encoding of a stored machine",
	ArgsUsage: "<name>",
	Flags:     registryFlags,
}

var registryListCommand = cli.Command{
	Action: registryAction(config.NoArgs, listAction),
	Name:   "list",
	Usage:  "prints the names of all stored machines",
	Flags:  registryFlags,
}

var registryDeleteCommand = cli.Command{
	Action:    registryAction(config.OneArg, deleteAction),
	Name:      "delete",
	Usage:     "removes a stored machine",
	ArgsUsage: "<name>",
	Flags:     registryFlags,
}

type registryFunc func(cfg *config.Config, reg *registry.Registry, log logger.Logger) error

// registryAction opens the registry for the duration of one command.
func registryAction(mode config.ArgumentMode, run registryFunc) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		cfg, err := config.NewConfig(ctx, mode)
		if err != nil {
			return err
		}
		log := logger.NewLogger(cfg.LogLevel, "padfsm-registry")

		reg, err := registry.Open(cfg.RegistryDb, log)
		if err != nil {
			return err
		}
		defer func() {
			if e := reg.Close(); e != nil && err == nil {
				err = e
			}
		}()
		return run(cfg, reg, log)
	}
}

func putAction(cfg *config.Config, reg *registry.Registry, log logger.Logger) error {
	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	name, err := reg.Put(m)
	if err != nil {
		return err
	}
	log.Noticef("Stored machine %s", name)
	return printText(cfg, name)
}

func getAction(cfg *config.Config, reg *registry.Registry, _ logger.Logger) error {
	m, err := reg.Get(cfg.Args[0])
	if err != nil {
		return err
	}
	text, err := m.Serialize()
	if err != nil {
		return err
	}
	return printText(cfg, text)
}

func listAction(cfg *config.Config, reg *registry.Registry, log logger.Logger) error {
	names, err := reg.Names()
	if err != nil {
		return err
	}
	log.Infof("Registry holds %d machines", len(names))
	return printText(cfg, strings.Join(names, "\n"))
}

func deleteAction(cfg *config.Config, reg *registry.Registry, log logger.Logger) error {
	if err := reg.Delete(cfg.Args[0]); err != nil {
		return err
	}
	log.Noticef("Deleted machine %s", cfg.Args[0])
	return nil
}
