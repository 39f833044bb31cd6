// Package variant provides matchers for asserting the dynamic
// type of interface values, the presence of optional pointer
// values, and the outcome of fallible calls.
package variant

import (
	"fmt"
	"reflect"

	"digital.vasic.assertions/pkg/match"
)

// IsVariant matches if the checked value's dynamic type
// asserts to T.
func IsVariant[T any]() match.Matcher[any] {
	return match.MatcherFunc[any](func(actual any) match.MatchResult {
		b := match.NewResult("is_variant")
		if _, ok := actual.(T); ok {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"passed variant %T does not match '%s'",
			actual, reflect.TypeOf((*T)(nil)).Elem(),
		))
	})
}

// SameVariantAs matches if the checked value and the expected
// value have the same dynamic type. The comparison is by type
// discriminant only; the values themselves are not compared.
func SameVariantAs(expected any) match.Matcher[any] {
	return match.MatcherFunc[any](func(actual any) match.MatchResult {
		b := match.NewResult("same_variant_as")
		if reflect.TypeOf(actual) == reflect.TypeOf(expected) {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"passed variant %T does not match '%T'",
			actual, expected,
		))
	})
}
