package match

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AlwaysMatches returns a matcher which matches any value.
func AlwaysMatches[T any]() Matcher[T] {
	return MatcherFunc[T](func(_ T) MatchResult {
		return NewResult("succeeds_always").Matched()
	})
}

// NeverMatches returns a matcher which fails for any value.
func NeverMatches[T any]() Matcher[T] {
	return MatcherFunc[T](func(_ T) MatchResult {
		return NewResult("fails_always").FailedBecause(
			"this matcher fails always",
		)
	})
}

// Is accepts a matcher and returns it unmodified. It is
// syntactic sugar for more readable assertions.
func Is[T any](matcher Matcher[T]) Matcher[T] {
	return matcher
}

// Not returns a matcher negating the result of the given
// matcher. The resulting matcher is named "not(<name>)".
func Not[T any](matcher Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		r := matcher.Check(actual)
		b := NewResult(fmt.Sprintf("not(%s)", r.Matcher))
		if r.Matched {
			return b.FailedBecause(fmt.Sprintf(
				"%s is satisfied", r.Matcher,
			))
		}
		return b.Matched()
	})
}

// EqualTo matches if the checked value is equal to the expected
// value.
//
// Do not use EqualTo for floating point values; use CloseTo
// instead.
func EqualTo[T comparable](expected T) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("equal")
		if actual == expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Eq is shorthand for EqualTo.
func Eq[T comparable](expected T) Matcher[T] {
	return EqualTo(expected)
}

// LessThan matches if the checked value is less than the
// expected value.
func LessThan[T constraints.Ordered](expected T) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("less_than")
		if actual < expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Lt is shorthand for LessThan.
func Lt[T constraints.Ordered](expected T) Matcher[T] {
	return LessThan(expected)
}

// GreaterThan matches if the checked value is greater than the
// expected value.
func GreaterThan[T constraints.Ordered](expected T) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("greater_than")
		if actual > expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Gt is shorthand for GreaterThan.
func Gt[T constraints.Ordered](expected T) Matcher[T] {
	return GreaterThan(expected)
}

// LessThanOrEqual matches if the checked value is less than or
// equal to the expected value.
func LessThanOrEqual[T constraints.Ordered](
	expected T,
) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("less_than_or_equal")
		if actual <= expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Leq is shorthand for LessThanOrEqual.
func Leq[T constraints.Ordered](expected T) Matcher[T] {
	return LessThanOrEqual(expected)
}

// GreaterThanOrEqual matches if the checked value is greater
// than or equal to the expected value.
func GreaterThanOrEqual[T constraints.Ordered](
	expected T,
) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("greater_than_or_equal")
		if actual >= expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Geq is shorthand for GreaterThanOrEqual.
func Geq[T constraints.Ordered](expected T) Matcher[T] {
	return GreaterThanOrEqual(expected)
}

// CloseTo matches if the checked value lies within an epsilon
// range around the expected value. Use this instead of EqualTo
// when comparing floating point values.
func CloseTo[T constraints.Float](expected, eps T) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("close_to")
		low := expected - eps
		high := expected + eps
		if low <= actual && actual <= high {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"%v should be between %v and %v",
			actual, low, high,
		))
	})
}

// SameObjectAs matches if the checked pointer and the expected
// pointer refer to the same object, i.e. the same address.
func SameObjectAs[T any](expected *T) Matcher[*T] {
	return MatcherFunc[*T](func(actual *T) MatchResult {
		b := NewResult("same_object")
		if actual == expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Satisfies matches if the checked value satisfies the given
// predicate. The description names the predicate in
// diagnostics.
func Satisfies[T any](
	description string,
	predicate func(T) bool,
) Matcher[T] {
	return MatcherFunc[T](func(actual T) MatchResult {
		b := NewResult("satisfies")
		if predicate(actual) {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"%s does not satisfy: %s",
			FormatValue(actual), description,
		))
	})
}
