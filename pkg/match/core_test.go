package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlwaysAndNeverMatches(t *testing.T) {
	r := AlwaysMatches[int]().Check(1)
	assert.True(t, r.Matched)
	assert.Equal(t, "succeeds_always", r.Matcher)

	r = NeverMatches[int]().Check(1)
	assert.False(t, r.Matched)
	assert.Equal(t, "fails_always", r.Matcher)
	assert.Equal(t, "this matcher fails always", r.Reason)
}

func TestIsReturnsMatcherUnmodified(t *testing.T) {
	m := EqualTo(1)
	assert.True(t, Is(m).Check(1).Matched)
	assert.False(t, Is(m).Check(2).Matched)
}

func TestNot(t *testing.T) {
	r := Not(AlwaysMatches[int]()).Check(1)
	assert.False(t, r.Matched)
	assert.Equal(t, "not(succeeds_always)", r.Matcher)
	assert.Equal(t, "succeeds_always is satisfied", r.Reason)

	r = Not(NeverMatches[int]()).Check(1)
	assert.True(t, r.Matched)
	assert.Equal(t, "not(fails_always)", r.Matcher)
}

func TestComparisonMatchers(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher[int]
		actual  int
		matched bool
	}{
		{"eq match", EqualTo(1), 1, true},
		{"eq fail", EqualTo(2), 1, false},
		{"lt match", LessThan(2), 1, true},
		{"lt equal fails", LessThan(1), 1, false},
		{"lt fail", LessThan(0), 1, false},
		{"gt match", GreaterThan(0), 1, true},
		{"gt equal fails", GreaterThan(1), 1, false},
		{"gt fail", GreaterThan(2), 1, false},
		{"leq less", LessThanOrEqual(2), 1, true},
		{"leq equal", LessThanOrEqual(1), 1, true},
		{"leq fail", LessThanOrEqual(0), 1, false},
		{"geq greater", GreaterThanOrEqual(0), 1, true},
		{"geq equal", GreaterThanOrEqual(1), 1, true},
		{"geq fail", GreaterThanOrEqual(2), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.matcher.Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
			if !tt.matched {
				assert.True(t, r.Compared)
			}
		})
	}
}

func TestShorthandAliases(t *testing.T) {
	assert.True(t, Eq(1).Check(1).Matched)
	assert.True(t, Lt(2).Check(1).Matched)
	assert.True(t, Gt(0).Check(1).Matched)
	assert.True(t, Leq(1).Check(1).Matched)
	assert.True(t, Geq(1).Check(1).Matched)
}

func TestCloseTo(t *testing.T) {
	tests := []struct {
		name    string
		actual  float64
		matched bool
	}{
		{"exact", 3.14, true},
		{"within band low", 3.1391, true},
		{"within band high", 3.1409, true},
		{"outside band", 3.145, false},
		{"far off", 2.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CloseTo(3.14, 0.001).Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
		})
	}
}

func TestSameObjectAs(t *testing.T) {
	x := 1
	y := 1

	assert.True(t, SameObjectAs(&x).Check(&x).Matched)

	r := SameObjectAs(&x).Check(&y)
	assert.False(t, r.Matched)
	assert.Equal(t, "same_object", r.Matcher)
}

func TestSatisfies(t *testing.T) {
	even := Satisfies("is even", func(n int) bool {
		return n%2 == 0
	})

	assert.True(t, even.Check(4).Matched)

	r := even.Check(3)
	assert.False(t, r.Matched)
	assert.Contains(t, r.Reason, "is even")
}

func TestCheckIsRepeatable(t *testing.T) {
	matchers := []Matcher[int]{
		EqualTo(1),
		LessThan(0),
		Not(EqualTo(1)),
		AllOf(GreaterThan(0), LessThan(2)),
		AnyOf[int](EqualTo(5), EqualTo(1)),
	}

	for _, m := range matchers {
		first := m.Check(1)
		second := m.Check(1)
		assert.Equal(t, first, second)
	}
}
