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

package config

import (
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ArgumentMode describes the positional arguments a command accepts.
type ArgumentMode int

const (
	NoArgs ArgumentMode = iota // the command takes no arguments
	OneArg                     // the command takes exactly one argument
	AnyArgs                    // the command takes any number of arguments
)

// Config summarizes the options of one command invocation.
type Config struct {
	AppName     string
	CommandName string
	Args        []string // positional arguments

	Event      event.Event // event analysed as a Markov chain
	EventName  string      // name of Event as given on the command line
	Format     string      // output format of the transition graph
	LogLevel   string      // level of the logging of the app action
	Output     string      // output file, stdout if empty
	RegistryDb string      // directory of the machine registry
	SqliteDb   string      // sqlite3 database receiving inspected rows
	Title      string      // title of the rendered transition graph
}

// NewConfig creates the configuration of a command from the command line
// and checks its positional arguments against mode.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	if err := cfg.checkArgs(mode); err != nil {
		return nil, err
	}

	ev, err := event.Parse(cfg.EventName)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --event")
	}
	cfg.Event = ev

	switch cfg.Format {
	case DotFormat, HtmlFormat:
	default:
		return nil, errors.Newf("unknown format %q, expected %s or %s", cfg.Format, DotFormat, HtmlFormat)
	}

	cfg.report(logger.NewLogger(cfg.LogLevel, "Config"))
	return cfg, nil
}

func (cfg *Config) checkArgs(mode ArgumentMode) error {
	n := len(cfg.Args)
	switch mode {
	case NoArgs:
		if n != 0 {
			return errors.Newf("%s takes no arguments, got %d", cfg.CommandName, n)
		}
	case OneArg:
		if n != 1 {
			return errors.Newf("%s takes exactly one argument, got %d", cfg.CommandName, n)
		}
	case AnyArgs:
	default:
		return errors.Newf("unknown argument mode %d", mode)
	}
	return nil
}

func (cfg *Config) report(log logger.Logger) {
	log.Debugf("Command: %s %s", cfg.AppName, cfg.CommandName)
	if cfg.Output != "" {
		log.Debugf("Output: %s", cfg.Output)
	}
	if cfg.SqliteDb != "" {
		log.Debugf("Sqlite3 database: %s", cfg.SqliteDb)
	}
	log.Debugf("Registry: %s", cfg.RegistryDb)
}
