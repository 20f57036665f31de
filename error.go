// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package inrith

import (
	"fmt"
	"math"
)

// InvalidBoundsError is returned when constructing an interval whose bounds
// cannot satisfy lower <= upper: out-of-order bounds or a NaN bound.
// Bounds are never swapped silently; the caller must fix its inputs.
type InvalidBoundsError struct {
	Lower float64
	Upper float64
}

// Error implements the error interface.
func (e *InvalidBoundsError) Error() string {
	if math.IsNaN(e.Lower) || math.IsNaN(e.Upper) {
		return fmt.Sprintf("invalid interval bounds [%v, %v]: NaN bound", e.Lower, e.Upper)
	}
	return fmt.Sprintf("invalid interval bounds [%v, %v]: lower exceeds upper", e.Lower, e.Upper)
}

// DivisionByZeroIntervalError is returned when dividing by an interval
// containing zero in a way the requested result type cannot represent:
// Interval.Div with a divisor strictly spanning zero, or any division by the
// single point {0}.
type DivisionByZeroIntervalError struct {
	Divisor Interval
}

// Error implements the error interface.
func (e *DivisionByZeroIntervalError) Error() string {
	return fmt.Sprintf("division by interval %s containing zero", e.Divisor)
}

// DomainError is returned when a function is applied to an interval wholly
// outside its domain, such as Log of a non-positive interval.
type DomainError struct {
	Op  string
	Arg Interval
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s is undefined on interval %s", e.Op, e.Arg)
}

var (
	_ error = (*InvalidBoundsError)(nil)
	_ error = (*DivisionByZeroIntervalError)(nil)
	_ error = (*DomainError)(nil)
)
