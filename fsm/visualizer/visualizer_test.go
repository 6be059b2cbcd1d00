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

package visualizer

import (
	"strings"
	"testing"

	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleMachine(t *testing.T) *machine.Machine {
	s0, err := state.New(map[event.Event]map[int]float64{
		event.PaddingSent:  {1: 1},
		event.BlockingEnd:  {1: 0.5},
		event.LimitReached: {state.StateEnd: 1},
	}, 2)
	require.NoError(t, err)
	s1, err := state.New(map[event.Event]map[int]float64{
		event.PaddingRecv: {0: 0.3, state.StateCancel: 0.7},
	}, 2)
	require.NoError(t, err)
	return &machine.Machine{States: []state.State{s0, s1}}
}

func TestVisualizer_Dot(t *testing.T) {
	out, err := Dot(exampleMachine(t), "Example Machine")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph"), out)
	assert.Contains(t, out, "Example Machine")
	for _, label := range []string{
		"PaddingSent 1.00",
		"BlockingEnd 0.50",
		"LimitReached 1.00",
		"PaddingRecv 0.30",
		"PaddingRecv 0.70",
	} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "doublecircle")
	assert.Contains(t, out, "box")
}

func TestVisualizer_DotOmitsUnusedReservedTargets(t *testing.T) {
	s, err := state.New(map[event.Event]map[int]float64{event.PaddingSent: {0: 1}}, 1)
	require.NoError(t, err)
	out, err := Dot(&machine.Machine{States: []state.State{s}}, "loop")
	require.NoError(t, err)
	assert.NotContains(t, out, "doublecircle")
	assert.NotContains(t, out, "cancel")
}

func TestVisualizer_DotRejectsMalformedVector(t *testing.T) {
	m := exampleMachine(t)
	m.States[1].NextState[event.PaddingRecv] = []float64{1}
	_, err := Dot(m, "broken")
	assert.ErrorContains(t, err, "state 1 has a vector of length 1")
}

func TestVisualizer_EdgeColor(t *testing.T) {
	for p, want := range map[float64]string{
		0.1: "gray",
		0.3: "green",
		0.5: "black",
		0.8: "indianred",
		1.0: "red",
	} {
		assert.Equal(t, want, edgeColor(p), "p=%v", p)
	}
}

func TestVisualizer_HTML(t *testing.T) {
	page, err := HTML(exampleMachine(t), "Example Machine")
	require.NoError(t, err)
	assert.Contains(t, page, "<title>Example Machine</title>")
	assert.Contains(t, page, "<h1>Example Machine</h1>")
	assert.Contains(t, page, "const dot = `digraph")
}

func TestVisualizer_HTMLEscapesTitle(t *testing.T) {
	title := "a `b` <c> ${d}"
	page, err := HTML(exampleMachine(t), title)
	require.NoError(t, err)
	assert.Contains(t, page, "<title>a `b` &lt;c&gt; ${d}</title>")
	assert.Contains(t, page, "<h1>a `b` &lt;c&gt; ${d}</h1>")

	start := strings.Index(page, "const dot = `")
	require.GreaterOrEqual(t, start, 0)
	script := page[start:strings.Index(page, "</script>")]
	assert.Contains(t, script, "\\`b\\`")
	assert.Contains(t, script, "\\${d}")
	// only the delimiters of the literal stay unescaped
	assert.Equal(t, 2, strings.Count(strings.ReplaceAll(script, "\\`", ""), "`"))
}
