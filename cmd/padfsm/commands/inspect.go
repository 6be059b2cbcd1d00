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
	"strings"

	"github.com/0xsoniclabs/padfsm/config"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

// InspectCommand prints the states of a machine as tables.
var InspectCommand = cli.Command{
	Action:    inspectAction,
	Name:      "inspect",
	Usage:     "prints the parameters and states of a machine",
	ArgsUsage: "<machine>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
		&utils.SqliteDbFlag,
	},
	Description: `
The inspect command prints the parameters, distributions and transitions
of the given machine as tables. With --db the states and transitions are
also inserted into the given sqlite3 database, keyed by machine name.
`,
}

const (
	createStatesTable = `CREATE TABLE IF NOT EXISTS states (
	machine TEXT NOT NULL,
	state INTEGER NOT NULL,
	action TEXT NOT NULL,
	action_is_block BOOLEAN NOT NULL,
	limit_dist TEXT NOT NULL,
	limit_includes_nonpadding BOOLEAN NOT NULL,
	timeout TEXT NOT NULL,
	replace_packets BOOLEAN NOT NULL,
	PRIMARY KEY (machine, state)
)`
	insertState = `INSERT OR REPLACE INTO states (
	machine, state, action, action_is_block, limit_dist, limit_includes_nonpadding, timeout, replace_packets
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	createTransitionsTable = `CREATE TABLE IF NOT EXISTS transitions (
	machine TEXT NOT NULL,
	state INTEGER NOT NULL,
	event TEXT NOT NULL,
	target TEXT NOT NULL,
	probability REAL NOT NULL,
	PRIMARY KEY (machine, state, event, target)
)`
	insertTransition = `INSERT OR REPLACE INTO transitions (
	machine, state, event, target, probability
) VALUES (?, ?, ?, ?, ?)`
)

func inspectAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "padfsm-inspect")

	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	name, err := m.Name()
	if err != nil {
		return err
	}

	ps := newPrinters(cfg, func() string {
		return renderMachine(name, m) + "\n" + renderStates(m)
	})
	defer ps.Close()
	if _, err := ps.AddPrinterToSqlite3(cfg.SqliteDb, createStatesTable, insertState, func() [][]any {
		return stateRows(name, m)
	}); err != nil {
		return err
	}
	if _, err := ps.AddPrinterToSqlite3(cfg.SqliteDb, createTransitionsTable, insertTransition, func() [][]any {
		return transitionRows(name, m)
	}); err != nil {
		return err
	}
	if err := ps.Print(); err != nil {
		return err
	}
	if cfg.SqliteDb != "" {
		log.Noticef("Exported %d states of machine %s to %s", len(m.States), name, cfg.SqliteDb)
	}
	return nil
}

// renderMachine renders the machine wide parameters.
func renderMachine(name string, m *machine.Machine) string {
	t := table.NewWriter()
	t.AppendRow(table.Row{"name", name})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"states", len(m.States)},
		{"allowed padding bytes", m.AllowedPaddingBytes},
		{"max padding fraction", m.MaxPaddingFrac},
		{"allowed blocked microseconds", m.AllowedBlockedMicrosec},
		{"max blocking fraction", m.MaxBlockingFrac},
		{"include small packets", m.IncludeSmallPackets},
	})
	return t.Render()
}

// renderStates renders one block of rows per state: its distributions and
// flags followed by its transitions in event order.
func renderStates(m *machine.Machine) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"state", "field", "value"})
	for i, s := range m.States {
		t.AppendRows([]table.Row{
			{i, "action", s.Action},
			{i, "action is block", s.ActionIsBlock},
			{i, "limit", s.Limit},
			{i, "limit includes nonpadding", s.LimitIncludesNonPadding},
			{i, "timeout", s.Timeout},
			{i, "replace", s.Replace},
		})
		for _, ev := range event.Events() {
			if _, found := s.NextState[ev]; !found {
				continue
			}
			t.AppendRow(table.Row{i, ev, formatTargets(s.Targets(ev))})
		}
		t.AppendSeparator()
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	return t.Render()
}

// formatTargets lists the targets of a sparse vector in column order.
func formatTargets(targets map[int]float64) string {
	keys := maps.Keys(targets)
	state.SortTargets(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", state.FormatTarget(k), targets[k]))
	}
	return strings.Join(parts, ", ")
}

func stateRows(name string, m *machine.Machine) [][]any {
	rows := make([][]any, 0, len(m.States))
	for i, s := range m.States {
		rows = append(rows, []any{
			name, i,
			s.Action.String(), s.ActionIsBlock,
			s.Limit.String(), s.LimitIncludesNonPadding,
			s.Timeout.String(), s.Replace,
		})
	}
	return rows
}

func transitionRows(name string, m *machine.Machine) [][]any {
	rows := [][]any{}
	for i, s := range m.States {
		for _, ev := range event.Events() {
			if _, found := s.NextState[ev]; !found {
				continue
			}
			targets := s.Targets(ev)
			keys := maps.Keys(targets)
			state.SortTargets(keys)
			for _, k := range keys {
				rows = append(rows, []any{name, i, ev.String(), state.FormatTarget(k), targets[k]})
			}
		}
	}
	return rows
}
