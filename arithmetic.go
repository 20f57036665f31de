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

// candidate is one possible result endpoint produced by combining operand
// endpoints. open records whether the contributing endpoints make the value
// unattained.
type candidate struct {
	value float64
	open  bool
}

// pickLower selects the smaller candidate; at equal values a closed candidate
// wins, since a closed endpoint means the extreme is attained.
func pickLower(a, b candidate) candidate {
	if b.value < a.value || (b.value == a.value && !b.open) {
		return b
	}
	return a
}

// pickUpper selects the larger candidate with the same tie rule as pickLower.
func pickUpper(a, b candidate) candidate {
	if b.value > a.value || (b.value == a.value && !b.open) {
		return b
	}
	return a
}

// binaryOp lifts a binary real function to intervals by combining all four
// endpoint pairings and keeping the extremes. This is the correct rule for
// any operation monotone in each argument, which covers +, - and × (the
// latter because the four cross-products bracket every sign case).
//
// Indeterminate pairings (∞ - ∞ and the like, surfacing as NaN) are skipped:
// the attained extremes always come from determinate pairings.
func binaryOp(a, b Interval, combine func(x, y endpoint) candidate) Interval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty
	}

	var lo, hi candidate
	seen := false
	for _, x := range [2]endpoint{a.lower, a.upper} {
		for _, y := range [2]endpoint{b.lower, b.upper} {
			c := combine(x, y)
			if math.IsNaN(c.value) {
				continue
			}
			if !seen {
				lo, hi = c, c
				seen = true
				continue
			}
			lo = pickLower(lo, c)
			hi = pickUpper(hi, c)
		}
	}
	if !seen {
		return Empty
	}

	return Interval{
		lower: lowerEndpoint(lo.value, lo.open),
		upper: upperEndpoint(hi.value, hi.open),
	}
}

// Add returns the sum of the two intervals: {x + y : x ∈ iv, y ∈ other}.
// Any operation with an empty operand is empty.
func (iv Interval) Add(other Interval) Interval {
	return binaryOp(iv, other, addEndpoints)
}

// Sub returns the difference {x - y : x ∈ iv, y ∈ other}. Note that the
// result bounds come from iv.lower-other.upper and iv.upper-other.lower,
// which the cross-product rule yields naturally.
func (iv Interval) Sub(other Interval) Interval {
	return binaryOp(iv, other, subEndpoints)
}

// Mul returns the product {x·y : x ∈ iv, y ∈ other}. All four endpoint
// products are considered, which is required when either operand may contain
// negative values or span zero.
func (iv Interval) Mul(other Interval) Interval {
	return binaryOp(iv, other, mulEndpoints)
}

// addEndpoints sums a pairing; the sum is unattained if either end is.
func addEndpoints(x, y endpoint) candidate {
	return candidate{value: x.value + y.value, open: x.open || y.open}
}

func subEndpoints(x, y endpoint) candidate {
	return candidate{value: x.value - y.value, open: x.open || y.open}
}

// mulEndpoints multiplies a pairing with the interval-arithmetic convention
// 0·∞ = 0. Zero products need their own openness rule: a closed zero
// endpoint makes the product 0 attained against ANY point of the other
// operand, so the other end's openness is irrelevant. Without this,
// ℝ × {0} would wrongly come out as the empty (0, 0) because every
// infinite endpoint is open.
func mulEndpoints(x, y endpoint) candidate {
	switch {
	case x.value == 0 && y.value == 0:
		return candidate{value: 0, open: x.open && y.open}
	case x.value == 0:
		return candidate{value: 0, open: x.open}
	case y.value == 0:
		return candidate{value: 0, open: y.open}
	}
	return candidate{value: x.value * y.value, open: x.open || y.open}
}

// Sign-restricted halves of the real line, used to split divisors at zero.
// Both exclude zero itself: the reciprocal is undefined there, so a divisor
// bound touching zero contributes an open, unbounded result endpoint instead.
var (
	negativeReals = Interval{lower: negInfinity(), upper: endpoint{value: 0, open: true}}
	positiveReals = Interval{lower: endpoint{value: 0, open: true}, upper: posInfinity()}
)

// Reciprocal returns {1/x : x ∈ iv, x ≠ 0} as a union. The divisor is split
// at zero and each signed part inverted:
//
//   - a strictly-signed interval yields one interval with swapped bounds,
//     e.g. 1/[2, 4] = [1/4, 1/2]
//   - a divisor with zero at a bound yields one half-unbounded interval,
//     e.g. 1/[0, 2] = [1/2, +∞)
//   - a divisor with zero in its interior yields two,
//     e.g. 1/[-1, 2] = (-∞, -1] ∪ [1/2, +∞)
//
// The reciprocal of the empty interval is the empty union. Only the
// degenerate divisor {0} fails, with *DivisionByZeroIntervalError.
func Reciprocal(iv Interval) (*Union, error) {
	if iv.IsEmpty() {
		return NewUnion(), nil
	}

	neg := iv.Intersection(negativeReals)
	pos := iv.Intersection(positiveReals)
	if neg.IsEmpty() && pos.IsEmpty() {
		return nil, &DivisionByZeroIntervalError{Divisor: iv}
	}

	parts := make([]Interval, 0, 2)
	if !neg.IsEmpty() {
		parts = append(parts, invertSigned(neg))
	}
	if !pos.IsEmpty() {
		parts = append(parts, invertSigned(pos))
	}
	return NewUnion(parts...), nil
}

// invertSigned maps x ↦ 1/x over an interval that excludes zero. The map is
// decreasing on each sign, so the bounds swap and each result endpoint
// inherits the openness of the opposite operand endpoint.
func invertSigned(iv Interval) Interval {
	return Interval{
		lower: lowerEndpoint(invertValue(iv.upper.value, iv.lower.value), iv.upper.open),
		upper: upperEndpoint(invertValue(iv.lower.value, iv.upper.value), iv.lower.open),
	}
}

// invertValue computes 1/v on the extended reals. A zero bound inverts to the
// infinity matching the sign of the interval's other bound, since float64
// division by zero cannot tell 0⁻ from 0⁺.
func invertValue(v, mate float64) float64 {
	if v == 0 {
		if mate < 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	r := 1 / v
	if r == 0 {
		return 0 // avoid a -0 bound from 1/-∞
	}
	return r
}

// Div returns the quotient {x/y : x ∈ iv, y ∈ other} as a single interval.
// It fails with *DivisionByZeroIntervalError when the divisor strictly spans
// zero (the quotient would be two disjoint unbounded pieces; use Quotient for
// that) or is the single point {0}. A divisor touching zero at one bound
// yields a half-unbounded interval. Division by the empty interval is empty.
func (iv Interval) Div(other Interval) (Interval, error) {
	recip, err := Reciprocal(other)
	if err != nil {
		return Empty, err
	}
	switch recip.Len() {
	case 0:
		return Empty, nil
	case 1:
		return iv.Mul(recip.intervals[0]), nil
	default:
		return Empty, &DivisionByZeroIntervalError{Divisor: other}
	}
}

// Quotient returns the quotient as a union, which stays defined when the
// divisor spans zero: dividing by [-1, 1] yields (-∞, -lo] ∪ [lo, +∞) style
// results instead of failing. Only the divisor {0} fails.
func (iv Interval) Quotient(other Interval) (*Union, error) {
	recip, err := Reciprocal(other)
	if err != nil {
		return nil, err
	}
	parts := make([]Interval, 0, recip.Len())
	for _, r := range recip.intervals {
		parts = append(parts, iv.Mul(r))
	}
	return NewUnion(parts...), nil
}

// Pow raises the interval to a non-negative integer power. For even n with
// zero in the interval's interior the lower bound clamps to 0, since x^n
// attains its minimum there. Negative exponents fail with *DomainError;
// compose Reciprocal and Pow explicitly for those.
func (iv Interval) Pow(n int) (Interval, error) {
	if n < 0 {
		return Empty, &DomainError{Op: "Pow", Arg: iv}
	}
	if iv.IsEmpty() {
		return Empty, nil
	}
	if n == 0 {
		return Point(1), nil
	}

	if n%2 == 0 && iv.lower.value < 0 && iv.upper.value > 0 {
		lc := candidate{value: math.Pow(iv.lower.value, float64(n)), open: iv.lower.open}
		uc := candidate{value: math.Pow(iv.upper.value, float64(n)), open: iv.upper.open}
		hi := pickUpper(lc, uc)
		return Interval{
			lower: endpoint{value: 0, open: false},
			upper: upperEndpoint(hi.value, hi.open),
		}, nil
	}

	return applyMonotone(iv, func(x float64) float64 {
		return math.Pow(x, float64(n))
	}), nil
}

// applyMonotone lifts a unary function to an interval by mapping both
// endpoints and keeping the extremes. Correct only when fn is monotone over
// the interval; callers restrict the domain first where needed.
func applyMonotone(iv Interval, fn func(float64) float64) Interval {
	if iv.IsEmpty() {
		return Empty
	}
	a := candidate{value: fn(iv.lower.value), open: iv.lower.open}
	b := candidate{value: fn(iv.upper.value), open: iv.upper.open}
	lo := pickLower(a, b)
	hi := pickUpper(a, b)
	return Interval{
		lower: lowerEndpoint(lo.value, lo.open),
		upper: upperEndpoint(hi.value, hi.open),
	}
}
