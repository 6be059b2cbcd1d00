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
	"time"

	"github.com/0xsoniclabs/padfsm/config"
	"github.com/0xsoniclabs/padfsm/fsm/analysis"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/logger"
	"github.com/0xsoniclabs/padfsm/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// AnalyzeCommand reports structural properties of a machine.
var AnalyzeCommand = cli.Command{
	Action:    analyzeAction,
	Name:      "analyze",
	Usage:     "reports reachability, probability mass and stationary distribution",
	ArgsUsage: "<machine>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.OutputFlag,
		&utils.EventFlag,
	},
	Description: `
The analyze command lists the states not reachable from the initial
state, splits the mass of every transition vector into real states,
cancel, end and no-op, and computes the stationary distribution of the
Markov chain induced by the event given with --event.
`,
}

func analyzeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx, config.OneArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "padfsm-analyze")

	m, err := loadMachine(cfg.Args[0])
	if err != nil {
		return err
	}
	start := time.Now()
	summary := analysis.Summarize(m)
	if len(summary.Unreachable) > 0 {
		log.Warningf("%d states are unreachable", len(summary.Unreachable))
	}

	var out strings.Builder
	out.WriteString(renderReachability(summary))
	out.WriteString("\n")
	out.WriteString(renderSummary(summary))
	out.WriteString("\n")
	stationary, err := stationaryOf(m, cfg.Event)
	if err != nil {
		log.Warningf("No stationary distribution for %v: %v", cfg.Event, err)
		fmt.Fprintf(&out, "no stationary distribution for %v: %v", cfg.Event, err)
	} else {
		out.WriteString(renderStationary(cfg.Event, stationary))
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Debugf("Analysis took %vh %vm %vs", hours, minutes, seconds)
	return printText(cfg, out.String())
}

func stationaryOf(m *machine.Machine, ev event.Event) ([]float64, error) {
	chain, err := analysis.NewChain(m, ev)
	if err != nil {
		return nil, err
	}
	return chain.Stationary()
}

func renderReachability(s analysis.Summary) string {
	if len(s.Unreachable) == 0 {
		return fmt.Sprintf("all %d states are reachable\n", len(s.States))
	}
	return fmt.Sprintf("unreachable states: %v\n", s.Unreachable)
}

func renderSummary(s analysis.Summary) string {
	t := table.NewWriter()
	t.SetTitle("transition mass")
	t.AppendHeader(table.Row{"state", "reachable", "event", "targets", "states", "cancel", "end", "no-op"})
	for _, ss := range s.States {
		if len(ss.Events) == 0 {
			t.AppendRow(table.Row{ss.Index, ss.Reachable, "-", 0, 0, 0, 0, 1})
		}
		for _, es := range ss.Events {
			t.AppendRow(table.Row{
				ss.Index, ss.Reachable, es.Event, es.Targets,
				fmt.Sprintf("%.4f", es.States),
				fmt.Sprintf("%.4f", es.Cancel),
				fmt.Sprintf("%.4f", es.End),
				fmt.Sprintf("%.4f", es.NoOp),
			})
		}
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true},
	})
	return t.Render()
}

func renderStationary(ev event.Event, stationary []float64) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"state", "probability"})
	for i, p := range stationary {
		t.AppendRow(table.Row{i, fmt.Sprintf("%.4f", p)})
	}
	return fmt.Sprintf("stationary distribution of %v\n", ev) + t.Render()
}
