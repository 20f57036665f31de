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

// endpoint represents one end of an interval: a real value together with an
// open flag. Unbounded ends use ±Inf for the value.
//
// An infinite endpoint is always open, since no interval attains ±∞. The
// constructors below enforce that, so code elsewhere never has to re-check.
type endpoint struct {
	value float64
	open  bool
}

// lowerEndpoint creates the lower end of an interval.
func lowerEndpoint(value float64, open bool) endpoint {
	return endpoint{value: value, open: open || math.IsInf(value, 0)}
}

// upperEndpoint creates the upper end of an interval.
func upperEndpoint(value float64, open bool) endpoint {
	return endpoint{value: value, open: open || math.IsInf(value, 0)}
}

// negInfinity returns an endpoint representing -∞.
func negInfinity() endpoint {
	return endpoint{value: math.Inf(-1), open: true}
}

// posInfinity returns an endpoint representing +∞.
func posInfinity() endpoint {
	return endpoint{value: math.Inf(1), open: true}
}

// compareLower compares two lower endpoints.
// Returns negative if a starts before b, zero if equal, positive otherwise.
// At equal values a closed lower endpoint starts earlier than an open one.
func compareLower(a, b endpoint) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	case a.open == b.open:
		return 0
	case a.open:
		return 1
	default:
		return -1
	}
}

// compareUpper compares two upper endpoints.
// Returns negative if a ends before b, zero if equal, positive otherwise.
// At equal values a closed upper endpoint ends later than an open one.
func compareUpper(a, b endpoint) int {
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	case a.open == b.open:
		return 0
	case a.open:
		return -1
	default:
		return 1
	}
}

// upperBeforeLower reports whether an upper endpoint lies strictly before a
// lower endpoint, i.e. whether the two sides share no point. At equal values
// the shared point belongs to both sides only when both endpoints are closed.
func upperBeforeLower(upper, lower endpoint) bool {
	if upper.value != lower.value {
		return upper.value < lower.value
	}
	return upper.open || lower.open
}

// gapBetween reports whether real points exist strictly between an upper
// endpoint and a lower endpoint. Unlike upperBeforeLower, two endpoints
// meeting at the same value leave a gap only when both are open: [0, 1) and
// [1, 2] cover [0, 2] without a hole, while (0, 1) and (1, 2) miss the point 1.
func gapBetween(upper, lower endpoint) bool {
	if upper.value != lower.value {
		return upper.value < lower.value
	}
	return upper.open && lower.open
}

// min returns the minimum of two values using a comparison function
func min[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) <= 0 {
		return a
	}
	return b
}

// max returns the maximum of two values using a comparison function
func max[T any](a, b T, compare func(T, T) int) T {
	if compare(a, b) >= 0 {
		return a
	}
	return b
}
