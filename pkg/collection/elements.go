package collection

import (
	"fmt"

	"digital.vasic.assertions/pkg/match"
)

// AllElementsSatisfy matches if every element of the checked
// slice satisfies the given predicate. An empty slice always
// matches.
func AllElementsSatisfy[T any](
	predicate func(T) bool,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("all_elements_satisfy")
		var nonsatisfying []T
		for _, element := range actual {
			if !predicate(element) {
				nonsatisfying = append(nonsatisfying, element)
			}
		}
		if len(nonsatisfying) > 0 {
			return b.FailedBecause(fmt.Sprintf(
				"the following elements do not satisfy the predicate: %s",
				match.FormatValue(nonsatisfying),
			))
		}
		return b.Matched()
	})
}

// SomeElementsSatisfy matches if at least one element of the
// checked slice satisfies the given predicate. An empty slice
// never matches.
func SomeElementsSatisfy[T any](
	predicate func(T) bool,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("some_elements_satisfy")
		for _, element := range actual {
			if predicate(element) {
				return b.Matched()
			}
		}
		return b.FailedBecause(
			"no elements satisfy the predicate",
		)
	})
}
