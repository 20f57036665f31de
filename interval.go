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

// Package inrith implements interval arithmetic over closed and half-open
// real intervals, plus unions of disjoint intervals.
//
// An Interval is a contiguous range of reals with optionally open or
// unbounded endpoints. Arithmetic follows the standard interval rules: the
// result of an operation is the tightest interval containing every pointwise
// result, so if x ∈ a and y ∈ b then x+y ∈ a.Add(b), and likewise for Sub,
// Mul and division. Division by an interval spanning zero is the one case a
// single interval cannot represent; Quotient and Union.Div return the exact
// two-piece result, while the strict Div fails.
//
// A Union is a set of disjoint intervals kept in sorted, merged normal form,
// with set operations (union, intersection, complement) and arithmetic that
// distributes over its members.
//
// All types are immutable values: operations allocate results and never
// mutate operands, so values can be shared freely across goroutines.
package inrith

import (
	"math"
	"strconv"
)

// Interval represents a contiguous range of real numbers between a lower and
// an upper endpoint. Each endpoint may be open or closed, and either side may
// be unbounded (±∞, always open).
//
// Examples:
//   - [1, 2] contains both 1 and 2
//   - (1, 2] contains 2 but not 1
//   - [0, +∞) contains every non-negative real
//
// Interval is an immutable value type: every operation returns a new value
// and no method mutates its receiver. The zero value is the point [0, 0].
type Interval struct {
	lower endpoint
	upper endpoint
}

var (
	// Empty is the empty set ∅, represented canonically as (0, 0).
	Empty = Interval{lower: endpoint{value: 0, open: true}, upper: endpoint{value: 0, open: true}}

	// Reals is the whole real line (-∞, +∞).
	Reals = Interval{lower: negInfinity(), upper: posInfinity()}
)

// New creates a closed interval [lower, upper]. It fails with
// *InvalidBoundsError when lower > upper or either bound is NaN; out-of-order
// bounds are never swapped silently. Infinite bounds are allowed and the
// corresponding side becomes open.
func New(lower, upper float64) (Interval, error) {
	return NewWith(lower, upper, false, false)
}

// NewOpen creates an open interval (lower, upper) with the same validation
// as New.
func NewOpen(lower, upper float64) (Interval, error) {
	return NewWith(lower, upper, true, true)
}

// NewWith creates an interval with explicit openness per side.
func NewWith(lower, upper float64, leftOpen, rightOpen bool) (Interval, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		return Empty, &InvalidBoundsError{Lower: lower, Upper: upper}
	}
	return Interval{
		lower: lowerEndpoint(lower, leftOpen),
		upper: upperEndpoint(upper, rightOpen),
	}, nil
}

// Must creates a closed interval and panics on invalid bounds.
// Intended for literals in tests and examples.
func Must(lower, upper float64) Interval {
	iv, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return iv
}

// Point creates the degenerate interval [v, v].
func Point(v float64) Interval {
	return Interval{
		lower: lowerEndpoint(v, false),
		upper: upperEndpoint(v, false),
	}
}

// Lower returns the lower bound value (-Inf when unbounded below).
func (iv Interval) Lower() float64 { return iv.lower.value }

// Upper returns the upper bound value (+Inf when unbounded above).
func (iv Interval) Upper() float64 { return iv.upper.value }

// LeftOpen reports whether the lower endpoint is excluded.
func (iv Interval) LeftOpen() bool { return iv.lower.open }

// RightOpen reports whether the upper endpoint is excluded.
func (iv Interval) RightOpen() bool { return iv.upper.open }

// IsEmpty reports whether the interval contains no points.
// This happens when both endpoints share a value and at least one is open.
func (iv Interval) IsEmpty() bool {
	return iv.lower.value == iv.upper.value && (iv.lower.open || iv.upper.open)
}

// IsPoint reports whether the interval contains exactly one point.
func (iv Interval) IsPoint() bool {
	return iv.lower.value == iv.upper.value && !iv.lower.open && !iv.upper.open
}

// LeftBounded reports whether the interval is bounded below.
func (iv Interval) LeftBounded() bool {
	return !math.IsInf(iv.lower.value, -1) || iv.IsEmpty()
}

// RightBounded reports whether the interval is bounded above.
func (iv Interval) RightBounded() bool {
	return !math.IsInf(iv.upper.value, 1) || iv.IsEmpty()
}

// Bounded reports whether the interval is bounded on both sides.
func (iv Interval) Bounded() bool {
	return iv.LeftBounded() && iv.RightBounded()
}

// Diameter returns the length of the interval (upper - lower), 0 for the
// empty interval and +Inf for unbounded intervals.
func (iv Interval) Diameter() float64 {
	if iv.IsEmpty() {
		return 0
	}
	return iv.upper.value - iv.lower.value
}

// Center returns the midpoint of the interval. It is NaN for the empty
// interval and for intervals unbounded on both sides.
func (iv Interval) Center() float64 {
	if iv.IsEmpty() {
		return math.NaN()
	}
	if !iv.LeftBounded() && iv.RightBounded() {
		return math.Inf(-1)
	}
	if iv.LeftBounded() && !iv.RightBounded() {
		return math.Inf(1)
	}
	return 0.5 * (iv.lower.value + iv.upper.value)
}

// Contains reports whether x falls within the interval.
// NaN is never contained.
func (iv Interval) Contains(x float64) bool {
	if math.IsNaN(x) || iv.IsEmpty() {
		return false
	}
	if x < iv.lower.value || (x == iv.lower.value && iv.lower.open) {
		return false
	}
	if x > iv.upper.value || (x == iv.upper.value && iv.upper.open) {
		return false
	}
	return true
}

// Overlaps reports whether the two intervals share at least one point.
// Meeting at a single value counts only when both meeting endpoints are
// closed; adjacency alone is not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	if upperBeforeLower(iv.upper, other.lower) {
		return false
	}
	if upperBeforeLower(other.upper, iv.lower) {
		return false
	}
	return true
}

// touches reports whether the two intervals overlap or are adjacent with no
// real points between them, i.e. whether they can merge into one interval.
func (iv Interval) touches(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !gapBetween(iv.upper, other.lower) &&
		!gapBetween(other.upper, iv.lower)
}

// merge combines two touching intervals into a single interval spanning both.
func (iv Interval) merge(other Interval) Interval {
	return Interval{
		lower: min(iv.lower, other.lower, compareLower),
		upper: max(iv.upper, other.upper, compareUpper),
	}
}

// IsSubset reports whether every point of the interval is contained in other.
// The empty interval is a subset of everything.
func (iv Interval) IsSubset(other Interval) bool {
	if iv.IsEmpty() {
		return true
	}
	if other.IsEmpty() {
		return false
	}
	return compareLower(other.lower, iv.lower) <= 0 &&
		compareUpper(iv.upper, other.upper) <= 0
}

// Intersection returns the interval of points common to both operands,
// Empty when they are disjoint.
func (iv Interval) Intersection(other Interval) Interval {
	if iv.IsEmpty() || other.IsEmpty() {
		return Empty
	}
	lo := max(iv.lower, other.lower, compareLower)
	hi := min(iv.upper, other.upper, compareUpper)
	if upperBeforeLower(hi, lo) {
		return Empty
	}
	return Interval{lower: lo, upper: hi}
}

// Equal reports whether the two intervals describe the same set of points.
// Comparison is exact, with no tolerance; all empty intervals are equal.
func (iv Interval) Equal(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return iv.IsEmpty() && other.IsEmpty()
	}
	return iv.lower == other.lower && iv.upper == other.upper
}

// AsClosed returns the interval with both finite endpoints closed.
// Infinite endpoints stay open.
func (iv Interval) AsClosed() Interval {
	return Interval{
		lower: lowerEndpoint(iv.lower.value, false),
		upper: upperEndpoint(iv.upper.value, false),
	}
}

// AsOpened returns the interval with both endpoints open.
func (iv Interval) AsOpened() Interval {
	return Interval{
		lower: lowerEndpoint(iv.lower.value, true),
		upper: upperEndpoint(iv.upper.value, true),
	}
}

// String renders the interval in bracket notation: "[1, 2]", "(0, +∞)",
// "[0, 1)". The empty interval renders as "∅". The output parses back with
// ParseInterval.
func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "∅"
	}
	lb := "["
	if iv.lower.open {
		lb = "("
	}
	rb := "]"
	if iv.upper.open {
		rb = ")"
	}
	return lb + formatBoundValue(iv.lower.value) + ", " + formatBoundValue(iv.upper.value) + rb
}

// formatBoundValue renders a bound value, using ∞ glyphs for infinite bounds.
func formatBoundValue(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-∞"
	case math.IsInf(v, 1):
		return "+∞"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
