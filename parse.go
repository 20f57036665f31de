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
	"strconv"
	"strings"
)

// ParseInterval parses the bracket notation produced by Interval.String.
//
// Supported syntax:
//   - Brackets: "[" / "]" for closed endpoints, "(" / ")" for open ones
//   - Two comma-separated bounds: floats in Go syntax, or "-∞", "+∞", "∞",
//     "-inf", "+inf", "inf" for unbounded sides
//   - "∅" for the empty interval
//
// Examples:
//
//	ParseInterval("[1, 2]")     // closed interval from 1 to 2
//	ParseInterval("(0, 1]")     // 1 included, 0 excluded
//	ParseInterval("[0, +∞)")    // every non-negative real
//	ParseInterval("∅")          // the empty interval
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty, fmt.Errorf("empty interval expression")
	}
	if s == "∅" {
		return Empty, nil
	}

	var leftOpen, rightOpen bool
	switch s[0] {
	case '[':
	case '(':
		leftOpen = true
	default:
		return Empty, fmt.Errorf("interval %q: missing opening bracket", s)
	}
	switch s[len(s)-1] {
	case ']':
	case ')':
		rightOpen = true
	default:
		return Empty, fmt.Errorf("interval %q: missing closing bracket", s)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Empty, fmt.Errorf("interval %q: want two comma-separated bounds", s)
	}

	lower, err := parseBoundValue(parts[0])
	if err != nil {
		return Empty, fmt.Errorf("interval %q: %w", s, err)
	}
	upper, err := parseBoundValue(parts[1])
	if err != nil {
		return Empty, fmt.Errorf("interval %q: %w", s, err)
	}

	iv, err := NewWith(lower, upper, leftOpen, rightOpen)
	if err != nil {
		return Empty, fmt.Errorf("interval %q: %w", s, err)
	}
	return iv, nil
}

// parseBoundValue parses a single bound, accepting ∞ glyphs alongside the
// float syntax of strconv.ParseFloat.
func parseBoundValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "∞", "+∞":
		return math.Inf(1), nil
	case "-∞":
		return math.Inf(-1), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bound %q", s)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("invalid bound %q: NaN is not a bound", s)
	}
	return v, nil
}

// ParseUnion parses the notation produced by Union.String: interval
// expressions joined with "∪", or "∅" for the empty union. The parsed
// members are normalized, so overlapping input intervals merge.
//
// Examples:
//
//	ParseUnion("[0, 1] ∪ [3, 5]")
//	ParseUnion("(-∞, -1] ∪ [1, +∞)")
//	ParseUnion("∅")
func ParseUnion(s string) (*Union, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty union expression")
	}
	if s == "∅" {
		return NewUnion(), nil
	}

	parts := strings.Split(s, "∪")
	intervals := make([]Interval, 0, len(parts))
	for _, part := range parts {
		iv, err := ParseInterval(part)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return NewUnion(intervals...), nil
}
