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

// Package authoring reads and writes padding machines as YAML documents in
// which transitions are given sparsely, by event and target.
package authoring

import (
	"sort"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/dist"
	"github.com/0xsoniclabs/padfsm/fsm/event"
	"github.com/0xsoniclabs/padfsm/fsm/machine"
	"github.com/0xsoniclabs/padfsm/fsm/state"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a machine.
type Document struct {
	AllowedPaddingBytes    uint64     `yaml:"allowed_padding_bytes"`
	MaxPaddingFrac         float64    `yaml:"max_padding_frac"`
	AllowedBlockedMicrosec uint64     `yaml:"allowed_blocked_microsec"`
	MaxBlockingFrac        float64    `yaml:"max_blocking_frac"`
	IncludeSmallPackets    bool       `yaml:"include_small_packets"`
	States                 []StateDoc `yaml:"states"`
}

// StateDoc is the YAML form of a state. Missing distributions are None.
type StateDoc struct {
	Action                  *DistDoc    `yaml:"action,omitempty"`
	ActionIsBlock           bool        `yaml:"action_is_block,omitempty"`
	Limit                   *DistDoc    `yaml:"limit,omitempty"`
	LimitIncludesNonPadding bool        `yaml:"limit_includes_nonpadding,omitempty"`
	Timeout                 *DistDoc    `yaml:"timeout,omitempty"`
	Replace                 bool        `yaml:"replace,omitempty"`
	Transitions             Transitions `yaml:"transitions,omitempty"`
}

// DistDoc is the YAML form of a distribution.
type DistDoc struct {
	Kind   dist.Kind `yaml:"kind"`
	Param1 float64   `yaml:"param1,omitempty"`
	Param2 float64   `yaml:"param2,omitempty"`
	Start  float64   `yaml:"start,omitempty"`
	Max    float64   `yaml:"max,omitempty"`
}

// Transitions maps an event to its targets, a state index, "cancel" or
// "end", and their probabilities.
type Transitions map[event.Event]map[string]float64

// MarshalYAML writes events in wire order and targets in column order.
func (t Transitions) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, ev := range event.Events() {
		targets := t[ev]
		if len(targets) == 0 {
			continue
		}
		keys := maps.Keys(targets)
		columns := make(map[string]int, len(keys))
		for _, key := range keys {
			target, err := state.ParseTarget(key)
			if err != nil {
				return nil, err
			}
			columns[key] = target
		}
		sort.Slice(keys, func(i, j int) bool {
			return state.TargetLess(columns[keys[i]], columns[keys[j]])
		})

		inner := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, key := range keys {
			k, v := &yaml.Node{}, &yaml.Node{}
			if err := k.Encode(key); err != nil {
				return nil, err
			}
			if err := v.Encode(targets[key]); err != nil {
				return nil, err
			}
			inner.Content = append(inner.Content, k, v)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: ev.String()}, inner)
	}
	return root, nil
}

// NewDocument converts a machine into its YAML form.
func NewDocument(m *machine.Machine) Document {
	doc := Document{
		AllowedPaddingBytes:    m.AllowedPaddingBytes,
		MaxPaddingFrac:         m.MaxPaddingFrac,
		AllowedBlockedMicrosec: m.AllowedBlockedMicrosec,
		MaxBlockingFrac:        m.MaxBlockingFrac,
		IncludeSmallPackets:    m.IncludeSmallPackets,
		States:                 make([]StateDoc, 0, len(m.States)),
	}
	for _, s := range m.States {
		sd := StateDoc{
			Action:                  newDistDoc(s.Action),
			ActionIsBlock:           s.ActionIsBlock,
			Limit:                   newDistDoc(s.Limit),
			LimitIncludesNonPadding: s.LimitIncludesNonPadding,
			Timeout:                 newDistDoc(s.Timeout),
			Replace:                 s.Replace,
		}
		for _, ev := range event.Events() {
			targets := s.Targets(ev)
			if len(targets) == 0 {
				continue
			}
			if sd.Transitions == nil {
				sd.Transitions = make(Transitions)
			}
			sparse := make(map[string]float64, len(targets))
			for target, p := range targets {
				sparse[state.FormatTarget(target)] = p
			}
			sd.Transitions[ev] = sparse
		}
		doc.States = append(doc.States, sd)
	}
	return doc
}

func newDistDoc(d dist.Dist) *DistDoc {
	if d.Equal(dist.Dist{}) {
		return nil
	}
	return &DistDoc{Kind: d.Kind, Param1: d.Param1, Param2: d.Param2, Start: d.Start, Max: d.Max}
}

func (d *DistDoc) dist() dist.Dist {
	if d == nil {
		return dist.Dist{}
	}
	return dist.Dist{Kind: d.Kind, Param1: d.Param1, Param2: d.Param2, Start: d.Start, Max: d.Max}
}

// Machine builds the machine described by the document. The result is not
// validated beyond its transitions.
func (doc Document) Machine() (*machine.Machine, error) {
	m := &machine.Machine{
		AllowedPaddingBytes:    doc.AllowedPaddingBytes,
		MaxPaddingFrac:         doc.MaxPaddingFrac,
		AllowedBlockedMicrosec: doc.AllowedBlockedMicrosec,
		MaxBlockingFrac:        doc.MaxBlockingFrac,
		IncludeSmallPackets:    doc.IncludeSmallPackets,
		States:                 make([]state.State, 0, len(doc.States)),
	}
	numStates := len(doc.States)
	for i, sd := range doc.States {
		sparse := make(map[event.Event]map[int]float64, len(sd.Transitions))
		for ev, targets := range sd.Transitions {
			sparse[ev] = make(map[int]float64, len(targets))
			for key, p := range targets {
				target, err := state.ParseTarget(key)
				if err != nil {
					return nil, errors.Wrapf(err, "state %d: event %v", i, ev)
				}
				if _, found := sparse[ev][target]; found {
					return nil, errors.Newf("state %d: event %v: target %s given more than once", i, ev, state.FormatTarget(target))
				}
				sparse[ev][target] = p
			}
		}
		s, err := state.New(sparse, numStates)
		if err != nil {
			var verr *fsm.ValidationError
			if errors.As(err, &verr) {
				verr.InState(i)
				return nil, err
			}
			return nil, errors.Wrapf(err, "state %d", i)
		}
		s.Action = sd.Action.dist()
		s.ActionIsBlock = sd.ActionIsBlock
		s.Limit = sd.Limit.dist()
		s.LimitIncludesNonPadding = sd.LimitIncludesNonPadding
		s.Timeout = sd.Timeout.dist()
		s.Replace = sd.Replace
		m.States = append(m.States, s)
	}
	return m, nil
}
