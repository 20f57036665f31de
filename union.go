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
	"iter"
	"slices"
	"strings"
)

// Union represents a union of disjoint intervals, stored in normal form:
// non-empty members sorted by lower endpoint, with no two members touching
// (neither overlapping nor adjacent). Normal form makes equality structural
// and set operations linear sweeps.
//
// Like Interval, Union is immutable: every operation returns a new value.
// The zero value and NewUnion() are the empty union ∅.
type Union struct {
	intervals []Interval
}

// NewUnion creates a union from any collection of intervals, normalizing
// them: empty members are dropped, the rest sorted by lower endpoint, and
// overlapping or adjacent members merged in a single linear pass.
func NewUnion(intervals ...Interval) *Union {
	return &Union{intervals: normalize(slices.Clone(intervals))}
}

// normalize canonicalizes a slice of intervals. It takes ownership of the
// slice and filters in place.
func normalize(intervals []Interval) []Interval {
	filtered := intervals[:0]
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			filtered = append(filtered, iv)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	slices.SortFunc(filtered, func(a, b Interval) int {
		if c := compareLower(a.lower, b.lower); c != 0 {
			return c
		}
		return compareUpper(a.upper, b.upper)
	})

	merged := filtered[:1]
	for i := 1; i < len(filtered); i++ {
		last := &merged[len(merged)-1]
		current := filtered[i]
		if last.touches(current) {
			*last = last.merge(current)
		} else {
			merged = append(merged, current)
		}
	}

	out := make([]Interval, len(merged))
	copy(out, merged)
	return out
}

// orEmpty lets nil receivers and arguments behave as the empty union.
func orEmpty(u *Union) *Union {
	if u == nil {
		return &Union{}
	}
	return u
}

// Len returns the number of member intervals.
func (u *Union) Len() int {
	return len(orEmpty(u).intervals)
}

// IsEmpty reports whether the union contains no points.
func (u *Union) IsEmpty() bool {
	return len(orEmpty(u).intervals) == 0
}

// Members returns a copy of the member intervals in normal-form order.
func (u *Union) Members() []Interval {
	return slices.Clone(orEmpty(u).intervals)
}

// Intervals returns an iterator over the member intervals, enabling
// range-over-function syntax:
//
//	for iv := range u.Intervals() {
//	    fmt.Println(iv)
//	}
func (u *Union) Intervals() iter.Seq[Interval] {
	return slices.Values(orEmpty(u).intervals)
}

// Contains reports whether any member interval contains x.
func (u *Union) Contains(x float64) bool {
	for _, iv := range orEmpty(u).intervals {
		if iv.Contains(x) {
			return true
		}
	}
	return false
}

// Union returns the set of points in either operand, re-normalized.
func (u *Union) Union(other *Union) *Union {
	u, other = orEmpty(u), orEmpty(other)
	intervals := slices.Clone(u.intervals)
	intervals = append(intervals, other.intervals...)
	return &Union{intervals: normalize(intervals)}
}

// UnionInterval returns the union extended with one more interval.
func (u *Union) UnionInterval(iv Interval) *Union {
	u = orEmpty(u)
	intervals := slices.Clone(u.intervals)
	intervals = append(intervals, iv)
	return &Union{intervals: normalize(intervals)}
}

// Intersection returns the set of points in both operands. Both member lists
// are sorted, so a two-pointer sweep intersecting the current pair and
// advancing whichever member ends first visits every overlapping pair once.
func (u *Union) Intersection(other *Union) *Union {
	u, other = orEmpty(u), orEmpty(other)
	if len(u.intervals) == 0 || len(other.intervals) == 0 {
		return &Union{}
	}

	result := make([]Interval, 0, len(u.intervals))
	i, j := 0, 0
	for i < len(u.intervals) && j < len(other.intervals) {
		if x := u.intervals[i].Intersection(other.intervals[j]); !x.IsEmpty() {
			result = append(result, x)
		}

		if compareUpper(u.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return &Union{intervals: normalize(result)}
}

// Complement returns the set of real numbers NOT in the union. Walking the
// sorted members emits the gap before each member and the tail after the
// last one; each gap endpoint is the flipped member endpoint.
func (u *Union) Complement() *Union {
	u = orEmpty(u)
	if len(u.intervals) == 0 {
		return &Union{intervals: []Interval{Reals}}
	}

	gaps := make([]Interval, 0, len(u.intervals)+1)
	currentLower := negInfinity()

	for _, iv := range u.intervals {
		gapUpper := endpoint{value: iv.lower.value, open: !iv.lower.open}
		if gap, ok := gapInterval(currentLower, gapUpper); ok {
			gaps = append(gaps, gap)
		}
		currentLower = endpoint{value: iv.upper.value, open: !iv.upper.open}
	}

	if tail, ok := gapInterval(currentLower, posInfinity()); ok {
		gaps = append(gaps, tail)
	}

	return &Union{intervals: normalize(gaps)}
}

// gapInterval builds the interval between two gap endpoints, reporting false
// when the gap is empty.
func gapInterval(lo, hi endpoint) (Interval, bool) {
	if lo.value > hi.value {
		return Empty, false
	}
	iv := Interval{
		lower: lowerEndpoint(lo.value, lo.open),
		upper: upperEndpoint(hi.value, hi.open),
	}
	if iv.IsEmpty() {
		return Empty, false
	}
	return iv, true
}

// IsSubset reports whether every point of the union is also in other.
func (u *Union) IsSubset(other *Union) bool {
	u, other = orEmpty(u), orEmpty(other)
	if len(u.intervals) == 0 {
		return true
	}
	if len(other.intervals) == 0 {
		return false
	}

	i, j := 0, 0
	for i < len(u.intervals) {
		if j >= len(other.intervals) {
			return false
		}

		if u.intervals[i].IsSubset(other.intervals[j]) {
			i++
			continue
		}

		if upperBeforeLower(other.intervals[j].upper, u.intervals[i].lower) {
			j++
			continue
		}

		return false
	}

	return true
}

// IsDisjoint reports whether the two unions share no points.
func (u *Union) IsDisjoint(other *Union) bool {
	u, other = orEmpty(u), orEmpty(other)
	if len(u.intervals) == 0 || len(other.intervals) == 0 {
		return true
	}

	i, j := 0, 0
	for i < len(u.intervals) && j < len(other.intervals) {
		if u.intervals[i].Overlaps(other.intervals[j]) {
			return false
		}

		if compareUpper(u.intervals[i].upper, other.intervals[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}

	return true
}

// Equal reports whether the two unions describe the same set of points.
// Both sides are in normal form, so this is member-wise equality.
func (u *Union) Equal(other *Union) bool {
	u, other = orEmpty(u), orEmpty(other)
	if len(u.intervals) != len(other.intervals) {
		return false
	}
	for i := range u.intervals {
		if !u.intervals[i].Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// distribute applies an interval operation to the Cartesian product of
// member pairs and normalizes the results. Interval arithmetic distributes
// over union, and because each per-pair result is tight, the merged result
// is the tightest representable union.
func (u *Union) distribute(other *Union, op func(Interval, Interval) Interval) *Union {
	u, other = orEmpty(u), orEmpty(other)
	results := make([]Interval, 0, len(u.intervals)*len(other.intervals))
	for _, a := range u.intervals {
		for _, b := range other.intervals {
			results = append(results, op(a, b))
		}
	}
	return &Union{intervals: normalize(results)}
}

// Add returns the member-wise sum of the two unions.
func (u *Union) Add(other *Union) *Union {
	return u.distribute(other, Interval.Add)
}

// Sub returns the member-wise difference of the two unions.
func (u *Union) Sub(other *Union) *Union {
	return u.distribute(other, Interval.Sub)
}

// Mul returns the member-wise product of the two unions.
func (u *Union) Mul(other *Union) *Union {
	return u.distribute(other, Interval.Mul)
}

// Div returns the member-wise quotient of the two unions. Divisor members
// spanning zero contribute two unbounded pieces via Reciprocal rather than
// failing; only a divisor member equal to {0} fails, with
// *DivisionByZeroIntervalError. An empty divisor yields an empty result.
func (u *Union) Div(other *Union) (*Union, error) {
	u, other = orEmpty(u), orEmpty(other)
	var results []Interval
	for _, b := range other.intervals {
		recip, err := Reciprocal(b)
		if err != nil {
			return nil, err
		}
		for _, r := range recip.intervals {
			for _, a := range u.intervals {
				results = append(results, a.Mul(r))
			}
		}
	}
	return &Union{intervals: normalize(results)}, nil
}

// String renders the union as its members joined with " ∪ ", in order,
// or "∅" when empty. The output parses back with ParseUnion.
func (u *Union) String() string {
	u = orEmpty(u)
	if len(u.intervals) == 0 {
		return "∅"
	}

	if len(u.intervals) == 1 {
		return u.intervals[0].String()
	}

	parts := make([]string, len(u.intervals))
	for i, iv := range u.intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, " ∪ ")
}
