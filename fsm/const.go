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

package fsm

// StateMax is the largest number of states a machine may have.
const StateMax = 1000

// Version is the only defined version of the binary machine format.
const Version = 1

// ProbabilityEps is the rounding tolerance on the total mass of a transition vector.
const ProbabilityEps = 0.0005

// ReservedColumns is the number of trailing non-state columns in each transition vector.
const ReservedColumns = 2
