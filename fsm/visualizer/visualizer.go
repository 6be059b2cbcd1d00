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

// Package visualizer renders the transition graph of a padding machine.
package visualizer

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// htmlPage shows a DOT graph rendered in the browser.
const htmlPage = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%[1]s</title>

    <script>
        const dot = ` + "`" + `%[2]s` + "`" + `;
    </script>
</head>

<body>
    <h1>%[1]s</h1>
    <div id="graph"></div>
    <script type="module">
        import { Graphviz } from "https://cdn.jsdelivr.net/npm/@hpcc-js/wasm/dist/index.js";
        if (Graphviz) {
            const graphviz = await Graphviz.load();
            const svg = graphviz.layout(dot, "svg", "dot");
	    document.getElementById("graph").innerHTML = svg;
        } 
    </script>
</body>
</html>
`

// Dot renders the transition graph of a machine in dot format. There is one
// node per state, plus the reserved targets when used, and one edge per
// event and target with a positive probability.
func Dot(m *machine.Machine, title string) (out string, err error) {
	g := graphviz.New()
	graph, err := g.Graph()
	if err != nil {
		return "", fmt.Errorf("Dot: failed to create graph. Error: %v", err)
	}
	defer func() {
		err = errors.Join(err, graph.Close(), g.Close())
	}()
	graph.SetLabel(title)

	n := len(m.States)
	nodes := make(map[int]*cgraph.Node, n+2)
	node := func(target int) (*cgraph.Node, error) {
		if nd, found := nodes[target]; found {
			return nd, nil
		}
		label := state.FormatTarget(target)
		nd, err := graph.CreateNode(label)
		if err != nil {
			return nil, fmt.Errorf("Dot: failed to create node %v. Error: %v", label, err)
		}
		nd.SetLabel(label)
		switch target {
		case state.StateCancel:
			nd.SetShape(cgraph.BoxShape)
		case state.StateEnd:
			nd.SetShape(cgraph.DoubleCircleShape)
		}
		nodes[target] = nd
		return nd, nil
	}
	for i := 0; i < n; i++ {
		if _, err := node(i); err != nil {
			return "", err
		}
	}

	for i, s := range m.States {
		for _, ev := range event.Events() {
			vec, found := s.NextState[ev]
			if !found {
				continue
			}
			if len(vec) != n+2 {
				return "", fmt.Errorf("Dot: state %d has a vector of length %d on %v, expected %d", i, len(vec), ev, n+2)
			}
			for col, p := range vec {
				if !(p > 0) {
					continue
				}
				target, err := node(state.Target(col, n))
				if err != nil {
					return "", err
				}
				e, err := graph.CreateEdge(fmt.Sprintf("%d-%v-%d", i, ev, col), nodes[i], target)
				if err != nil {
					return "", fmt.Errorf("Dot: failed to create edge from %d on %v. Error: %v", i, ev, err)
				}
				e.SetLabel(fmt.Sprintf("%v %.2f", ev, p))
				e.SetColor(edgeColor(p))
			}
		}
	}

	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("Dot: failed to render. Error: %v", err)
	}
	return buf.String(), nil
}

// edgeColor grades an edge by its probability.
func edgeColor(p float64) string {
	switch int(4 * p) {
	case 0:
		return "gray"
	case 1:
		return "green"
	case 2:
		return "black"
	case 3:
		return "indianred"
	}
	return "red"
}

// HTML renders the transition graph of a machine as a web page.
func HTML(m *machine.Machine, title string) (string, error) {
	dot, err := Dot(m, title)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(htmlPage, html.EscapeString(title), jsTemplate.Replace(dot)), nil
}

// jsTemplate escapes text embedded in a JavaScript template literal inside
// a script element.
var jsTemplate = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", "\\${",
	"</", `<\/`,
)
