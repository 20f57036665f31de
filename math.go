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

import "math"

// nonNegativeReals is [0, +∞), the domain of Sqrt.
var nonNegativeReals = Interval{
	lower: endpoint{value: 0, open: false},
	upper: posInfinity(),
}

// Exp returns {e^x : x ∈ iv}. Total: exp is monotone over the whole line,
// and an interval unbounded below maps to an interval open at 0.
func Exp(iv Interval) Interval {
	return applyMonotone(iv, math.Exp)
}

// Log returns {ln x : x ∈ iv, x > 0}. The argument is restricted to its
// positive part first, so Log([0, 1]) = (-∞, 0]. It fails with *DomainError
// when the argument has no positive part.
func Log(iv Interval) (Interval, error) {
	pos := iv.Intersection(positiveReals)
	if pos.IsEmpty() {
		return Empty, &DomainError{Op: "Log", Arg: iv}
	}
	return applyMonotone(pos, math.Log), nil
}

// Sqrt returns {√x : x ∈ iv, x ≥ 0}, restricting the argument to its
// non-negative part. It fails with *DomainError when the argument is
// entirely negative.
func Sqrt(iv Interval) (Interval, error) {
	nn := iv.Intersection(nonNegativeReals)
	if nn.IsEmpty() {
		return Empty, &DomainError{Op: "Sqrt", Arg: iv}
	}
	return applyMonotone(nn, math.Sqrt), nil
}
