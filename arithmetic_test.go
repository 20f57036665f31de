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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		{"[2, 4]", "[1, 6]", "[3, 10]"},
		{"[5, 5]", "[5, 5]", "[10, 10]"},
		{"[-2, 3]", "[-1, 1]", "[-3, 4]"},
		{"(0, 1]", "[1, 2]", "(1, 3]"},
		{"(0, 1)", "(0, 1)", "(0, 2)"},
		{"[0, +∞)", "[1, 2]", "[1, +∞)"},
		{"(-∞, 0]", "[0, +∞)", "(-∞, +∞)"},
		{"∅", "[1, 2]", "∅"},
	}

	for _, tt := range tests {
		t.Run(tt.a+" + "+tt.b, func(t *testing.T) {
			a := mustParseInterval(t, tt.a)
			b := mustParseInterval(t, tt.b)
			want := mustParseInterval(t, tt.want)
			got := a.Add(b)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
			assert.True(t, b.Add(a).Equal(got), "Add must be commutative")
		})
	}
}

func TestSub(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		// Bounds swap: [a.lo - b.hi, a.hi - b.lo].
		{"[2, 4]", "[1, 6]", "[-4, 3]"},
		{"[5, 5]", "[2, 2]", "[3, 3]"},
		{"[0, 1]", "[0, 1]", "[-1, 1]"},
		{"[1, 2]", "(0, 1]", "[0, 2)"},
		{"[0, +∞)", "[0, +∞)", "(-∞, +∞)"},
		{"[1, 2]", "∅", "∅"},
	}

	for _, tt := range tests {
		t.Run(tt.a+" - "+tt.b, func(t *testing.T) {
			a := mustParseInterval(t, tt.a)
			b := mustParseInterval(t, tt.b)
			want := mustParseInterval(t, tt.want)
			got := a.Sub(b)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want string
	}{
		{"[2, 4]", "[1, 6]", "[2, 24]"},
		{"[5, 5]", "[5, 5]", "[25, 25]"},
		{"[-2, -1]", "[3, 4]", "[-8, -3]"},
		{"[-2, 3]", "[-1, 4]", "[-8, 12]"},
		{"[-1, 1]", "[-1, 1]", "[-1, 1]"},
		{"[0, 0]", "[-5, 7]", "[0, 0]"},
		{"[0, 1]", "[2, +∞)", "[0, +∞)"},
		{"(-∞, -1]", "[1, 2]", "(-∞, -1]"},
		{"(0, 2]", "[3, 4]", "(0, 8]"},
		{"∅", "[1, 2]", "∅"},
	}

	for _, tt := range tests {
		t.Run(tt.a+" * "+tt.b, func(t *testing.T) {
			a := mustParseInterval(t, tt.a)
			b := mustParseInterval(t, tt.b)
			want := mustParseInterval(t, tt.want)
			got := a.Mul(b)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
			assert.True(t, b.Mul(a).Equal(got), "Mul must be commutative")
		})
	}
}

func TestMulZeroTimesUnbounded(t *testing.T) {
	t.Parallel()

	// 0·∞ = 0 by convention, and a closed zero is attained against any
	// point of the other operand, so ℝ × {0} is exactly {0}.
	got := Reals.Mul(Point(0))
	assert.True(t, got.Equal(Point(0)), "got %s", got)
}

// sampleValues returns representative points of a bounded interval:
// attained endpoints and the midpoint.
func sampleValues(iv Interval) []float64 {
	var pts []float64
	if !iv.LeftOpen() {
		pts = append(pts, iv.Lower())
	}
	if !iv.RightOpen() {
		pts = append(pts, iv.Upper())
	}
	if c := iv.Center(); iv.Contains(c) {
		pts = append(pts, c)
	}
	return pts
}

// TestContainmentLaw checks the fundamental soundness property: if x ∈ a and
// y ∈ b then op(x, y) ∈ op(a, b), for sampled x and y.
func TestContainmentLaw(t *testing.T) {
	t.Parallel()

	intervals := []Interval{
		Must(2, 4),
		Must(-3, -1),
		Must(-2, 5),
		Point(7),
		Must(0, 1),
		mustParseInterval(t, "(0, 2]"),
		mustParseInterval(t, "[-1, 1)"),
	}

	ops := []struct {
		name string
		lift func(a, b Interval) Interval
		eval func(x, y float64) float64
	}{
		{"Add", Interval.Add, func(x, y float64) float64 { return x + y }},
		{"Sub", Interval.Sub, func(x, y float64) float64 { return x - y }},
		{"Mul", Interval.Mul, func(x, y float64) float64 { return x * y }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, a := range intervals {
				for _, b := range intervals {
					result := op.lift(a, b)
					for _, x := range sampleValues(a) {
						for _, y := range sampleValues(b) {
							assert.True(t, result.Contains(op.eval(x, y)),
								"%s(%s, %s) = %s does not contain %v op %v",
								op.name, a, b, result, x, y)
						}
					}
				}
			}
		})
	}
}

func TestReciprocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		divisor string
		want    string
	}{
		{"[2, 4]", "[0.25, 0.5]"},
		{"[-4, -2]", "[-0.5, -0.25]"},
		{"[1, 1]", "[1, 1]"},
		{"[-1, 1]", "(-∞, -1] ∪ [1, +∞)"},
		{"[0, 2]", "[0.5, +∞)"}, // zero at the lower bound is excluded
		{"[-2, 0]", "(-∞, -0.5]"},
		{"(0, 2]", "[0.5, +∞)"},
		{"[1, +∞)", "(0, 1]"},
		{"(-∞, +∞)", "(-∞, 0) ∪ (0, +∞)"},
		{"∅", "∅"},
	}

	for _, tt := range tests {
		t.Run("1/"+tt.divisor, func(t *testing.T) {
			divisor := mustParseInterval(t, tt.divisor)
			want, err := ParseUnion(tt.want)
			require.NoError(t, err)
			got, err := Reciprocal(divisor)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestReciprocalOfPointZero(t *testing.T) {
	t.Parallel()

	_, err := Reciprocal(Point(0))
	var divErr *DivisionByZeroIntervalError
	require.ErrorAs(t, err, &divErr)
	assert.True(t, divErr.Divisor.Equal(Point(0)))
}

func TestDivStrict(t *testing.T) {
	t.Parallel()

	t.Run("plain quotient", func(t *testing.T) {
		got, err := Must(1, 2).Div(Must(2, 4))
		require.NoError(t, err)
		assert.True(t, got.Equal(Must(0.25, 1)), "got %s", got)
	})

	t.Run("divisor spanning zero fails", func(t *testing.T) {
		_, err := Must(1, 2).Div(Must(-1, 1))
		var divErr *DivisionByZeroIntervalError
		require.ErrorAs(t, err, &divErr)
		assert.True(t, divErr.Divisor.Equal(Must(-1, 1)))
	})

	t.Run("divisor {0} fails", func(t *testing.T) {
		_, err := Must(1, 2).Div(Point(0))
		var divErr *DivisionByZeroIntervalError
		require.ErrorAs(t, err, &divErr)
	})

	t.Run("zero at divisor bound gives half-unbounded result", func(t *testing.T) {
		got, err := Must(1, 2).Div(Must(0, 2))
		require.NoError(t, err)
		assert.True(t, got.Equal(mustParseInterval(t, "[0.5, +∞)")), "got %s", got)
	})

	t.Run("empty divisor gives empty result", func(t *testing.T) {
		got, err := Must(1, 2).Div(Empty)
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
}

func TestQuotient(t *testing.T) {
	t.Parallel()

	t.Run("divisor spanning zero gives two unbounded pieces", func(t *testing.T) {
		got, err := Must(1, 2).Quotient(Must(-1, 1))
		require.NoError(t, err)
		require.Equal(t, 2, got.Len())

		members := got.Members()
		assert.False(t, members[0].LeftBounded(), "first piece must be unbounded below")
		assert.True(t, members[0].RightBounded())
		assert.True(t, members[1].LeftBounded())
		assert.False(t, members[1].RightBounded(), "second piece must be unbounded above")

		want, err := ParseUnion("(-∞, -1] ∪ [1, +∞)")
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	})

	t.Run("sign-definite divisor gives one piece", func(t *testing.T) {
		got, err := Must(4, 8).Quotient(Must(2, 4))
		require.NoError(t, err)
		require.Equal(t, 1, got.Len())
		assert.True(t, got.Members()[0].Equal(Must(1, 4)), "got %s", got)
	})

	t.Run("divisor {0} fails", func(t *testing.T) {
		_, err := Must(1, 2).Quotient(Point(0))
		var divErr *DivisionByZeroIntervalError
		require.ErrorAs(t, err, &divErr)
	})
}

func TestPow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base string
		n    int
		want string
	}{
		{"[2, 3]", 2, "[4, 9]"},
		{"[-3, -1]", 2, "[1, 9]"},
		{"[-1, 2]", 2, "[0, 4]"},
		{"(-1, 2)", 2, "[0, 4)"},
		{"[-2, 1]", 3, "[-8, 1]"},
		{"[-2, 3]", 1, "[-2, 3]"},
		{"[-5, 7]", 0, "[1, 1]"},
		{"[0, 2]", 2, "[0, 4]"},
		{"∅", 2, "∅"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			base := mustParseInterval(t, tt.base)
			want := mustParseInterval(t, tt.want)
			got, err := base.Pow(tt.n)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}

	t.Run("negative exponent fails", func(t *testing.T) {
		_, err := Must(1, 2).Pow(-1)
		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
	})
}

func TestArithmeticAllocatesNewValues(t *testing.T) {
	t.Parallel()

	a := Must(1, 2)
	b := Must(3, 4)
	_ = a.Add(b)
	_ = a.Mul(b)
	assert.True(t, a.Equal(Must(1, 2)), "operands must not change")
	assert.True(t, b.Equal(Must(3, 4)), "operands must not change")
}

func TestAddSubRoundTrip(t *testing.T) {
	t.Parallel()

	// (a + b) - b contains a but is generally wider: interval subtraction
	// is not the inverse of addition.
	a := Must(1, 2)
	b := Must(3, 5)
	back := a.Add(b).Sub(b)
	assert.True(t, a.IsSubset(back))
	assert.True(t, back.Equal(Must(-1, 4)), "got %s", back)
}

func TestMulInfinityConvention(t *testing.T) {
	t.Parallel()

	// [0, 1] × [2, +∞): the zero endpoint absorbs the infinity.
	got := Must(0, 1).Mul(mustParseInterval(t, "[2, +∞)"))
	assert.True(t, got.Equal(mustParseInterval(t, "[0, +∞)")), "got %s", got)
	assert.True(t, got.Contains(0))
	assert.False(t, got.Contains(math.Inf(1)))
}
