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

// Package dist defines the parameterized distributions of a padding machine.
// Sampling is left to the engine running a machine; this package only
// describes and validates parameters.
package dist

import (
	"fmt"
	"math"
	"strings"

	"github.com/0xsoniclabs/padfsm/fsm"
	"github.com/0xsoniclabs/padfsm/fsm/wire"
	"github.com/cockroachdb/errors"
)

// SerializedSize is the number of bytes of an encoded distribution:
// a 2-byte kind followed by four doubles.
const SerializedSize = 2 + 4*8

// Kind selects the family of a distribution.
type Kind uint16

// Kinds with their wire identifiers.
const (
	None Kind = iota
	Uniform
	Normal
	LogNormal
	Binomial
	Geometric
	Pareto
	Poisson
	Weibull
	Gamma
	Beta

	NumKinds
)

var kindText = [NumKinds]string{
	None:      "none",
	Uniform:   "uniform",
	Normal:    "normal",
	LogNormal: "lognormal",
	Binomial:  "binomial",
	Geometric: "geometric",
	Pareto:    "pareto",
	Poisson:   "poisson",
	Weibull:   "weibull",
	Gamma:     "gamma",
	Beta:      "beta",
}

func (k Kind) String() string {
	if k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return kindText[k]
}

// ParseKind finds the kind for a name; the comparison ignores case.
func ParseKind(name string) (Kind, error) {
	for i, text := range kindText {
		if strings.EqualFold(text, name) {
			return Kind(i), nil
		}
	}
	return None, fmt.Errorf("unknown distribution kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k >= NumKinds {
		return nil, fmt.Errorf("cannot marshal invalid distribution kind %d", uint16(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Dist is a distribution with up to two parameters whose samples are
// bounded below by Start and above by Max. A Max of zero means unbounded.
type Dist struct {
	Kind   Kind
	Param1 float64
	Param2 float64
	Start  float64
	Max    float64
}

// IsNone reports whether the distribution is unused.
func (d Dist) IsNone() bool {
	return d.Kind == None
}

// Equal reports whether both distributions are bit-for-bit identical.
func (d Dist) Equal(o Dist) bool {
	return d.Kind == o.Kind &&
		math.Float64bits(d.Param1) == math.Float64bits(o.Param1) &&
		math.Float64bits(d.Param2) == math.Float64bits(o.Param2) &&
		math.Float64bits(d.Start) == math.Float64bits(o.Start) &&
		math.Float64bits(d.Max) == math.Float64bits(o.Max)
}

func (d Dist) String() string {
	switch d.Kind {
	case None:
		return "none"
	case Geometric, Poisson:
		return fmt.Sprintf("%v(%v) start=%v max=%v", d.Kind, d.Param1, d.Start, d.Max)
	}
	return fmt.Sprintf("%v(%v, %v) start=%v max=%v", d.Kind, d.Param1, d.Param2, d.Start, d.Max)
}

// Validate checks that the parameters are in the domain of the kind and
// that a bounded Max is not below Start. The returned error is a
// *fsm.ValidationError whose Field is left for the caller to fill in.
func (d Dist) Validate() error {
	if d.Kind == None {
		return nil
	}
	if d.Kind >= NumKinds {
		return invalid(d.Kind, "unknown distribution kind %d", uint16(d.Kind))
	}
	if err := d.validateParams(); err != nil {
		return err
	}
	if math.IsNaN(d.Start) || math.IsNaN(d.Max) {
		return invalid(d, "start (%v) and max (%v) must be numbers", d.Start, d.Max)
	}
	if d.Max != 0 && !math.IsInf(d.Max, 1) && d.Max < d.Start {
		return invalid(d.Max, "max (%v) must not be smaller than start (%v)", d.Max, d.Start)
	}
	return nil
}

func (d Dist) validateParams() error {
	p1, p2 := d.Param1, d.Param2
	switch d.Kind {
	case Uniform:
		if !isFinite(p1) || !isFinite(p2) || p1 >= p2 {
			return invalid(d, "for uniform, param1 (low, %v) must be smaller than param2 (high, %v)", p1, p2)
		}
	case Normal, LogNormal:
		if !isFinite(p1) {
			return invalid(p1, "for %v, param1 (mean, %v) must be finite", d.Kind, p1)
		}
		if !isFinite(p2) || p2 < 0 {
			return invalid(p2, "for %v, param2 (standard deviation, %v) must be finite and non-negative", d.Kind, p2)
		}
	case Binomial:
		if !isFinite(p1) || p1 < 0 || p1 != math.Trunc(p1) {
			return invalid(p1, "for binomial, param1 (trials, %v) must be a non-negative integer", p1)
		}
		if !isProbability(p2) {
			return invalid(p2, "for binomial, param2 (probability, %v) has to be [0.0, 1.0]", p2)
		}
	case Geometric:
		if !isProbability(p1) {
			return invalid(p1, "for geometric, param1 (probability, %v) has to be [0.0, 1.0]", p1)
		}
	case Poisson:
		if !isPositive(p1) {
			return invalid(p1, "for poisson, param1 (lambda, %v) must be positive and finite", p1)
		}
	case Pareto, Weibull:
		if !isPositive(p1) || !isPositive(p2) {
			return invalid(d, "for %v, param1 (scale, %v) and param2 (shape, %v) must be positive and finite", d.Kind, p1, p2)
		}
	case Gamma:
		if !isPositive(p1) || !isPositive(p2) {
			return invalid(d, "for gamma, param1 (shape, %v) and param2 (scale, %v) must be positive and finite", p1, p2)
		}
	case Beta:
		if !isPositive(p1) || !isPositive(p2) {
			return invalid(d, "for beta, param1 (alpha, %v) and param2 (beta, %v) must be positive and finite", p1, p2)
		}
	}
	return nil
}

func invalid(value any, format string, args ...any) *fsm.ValidationError {
	return fsm.Invalid("", value, format, args...)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func isPositive(x float64) bool {
	return isFinite(x) && x > 0
}

func isProbability(x float64) bool {
	return x >= 0 && x <= 1
}

// Encode writes the distribution in its fixed-size binary form.
func (d Dist) Encode(w wire.Writer) error {
	if err := w.WriteUint16(uint16(d.Kind)); err != nil {
		return errors.Wrap(err, "cannot write distribution kind")
	}
	for _, v := range [4]float64{d.Param1, d.Param2, d.Start, d.Max} {
		if err := w.WriteFloat64(v); err != nil {
			return errors.Wrap(err, "cannot write distribution parameter")
		}
	}
	return nil
}

// Decode reads a distribution written by Encode.
func Decode(r wire.Reader) (Dist, error) {
	kind, err := r.ReadUint16()
	if err != nil {
		return Dist{}, fsm.WrapDecode(err, "cannot read distribution kind")
	}
	if Kind(kind) >= NumKinds {
		return Dist{}, fsm.DecodeErrorf("unknown distribution kind %d", kind)
	}
	var params [4]float64
	for i := range params {
		if params[i], err = r.ReadFloat64(); err != nil {
			return Dist{}, fsm.WrapDecode(err, "cannot read distribution parameter")
		}
	}
	return Dist{
		Kind:   Kind(kind),
		Param1: params[0],
		Param2: params[1],
		Start:  params[2],
		Max:    params[3],
	}, nil
}
