// Package collection provides matchers for asserting properties
// of slices and maps: containment, ordering, sortedness and
// element predicates.
package collection

import (
	"fmt"

	"digital.vasic.assertions/pkg/match"
)

// ContainsInAnyOrder matches if the checked slice contains all
// and only the expected elements, in any order.
func ContainsInAnyOrder[T comparable](
	expected []T,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("contains_in_any_order")
		remaining := append([]T(nil), expected...)

		for _, element := range actual {
			idx := indexOf(remaining, element)
			if idx < 0 {
				return b.FailedBecause(fmt.Sprintf(
					"%s contains an unexpected element: %s",
					match.FormatValue(actual),
					match.FormatValue(element),
				))
			}
			remaining = append(
				remaining[:idx], remaining[idx+1:]...,
			)
		}

		if len(remaining) > 0 {
			return b.FailedBecause(fmt.Sprintf(
				"%s did not contain the following elements: %s",
				match.FormatValue(actual),
				match.FormatValue(remaining),
			))
		}
		return b.Matched()
	})
}

// ContainsInOrder matches if the checked slice contains all and
// only the expected elements, in the given order.
func ContainsInOrder[T comparable](
	expected []T,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("contains_in_order")

		if len(actual) > len(expected) {
			return b.FailedBecause(fmt.Sprintf(
				"the expected list is shorter than the actual list by %d elements",
				len(actual)-len(expected),
			))
		}
		if len(actual) < len(expected) {
			return b.FailedBecause(fmt.Sprintf(
				"the actual list is shorter than the expected list by %d elements",
				len(expected)-len(actual),
			))
		}

		type pair struct {
			Actual   T
			Expected T
		}
		var nonmatching []pair
		for i, element := range actual {
			if element != expected[i] {
				nonmatching = append(nonmatching, pair{
					Actual:   element,
					Expected: expected[i],
				})
			}
		}

		if len(nonmatching) > 0 {
			return b.FailedBecause(fmt.Sprintf(
				"the following actual/expected pairs do not match: %s",
				match.FormatValue(nonmatching),
			))
		}
		return b.Matched()
	})
}

// ContainsSubset matches if the checked slice contains all,
// possibly more, of the expected elements.
func ContainsSubset[T comparable](
	expected []T,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("contains_subset")
		remaining := append([]T(nil), expected...)

		for _, element := range actual {
			idx := indexOf(remaining, element)
			if idx >= 0 {
				remaining = append(
					remaining[:idx], remaining[idx+1:]...,
				)
			}
		}

		if len(remaining) > 0 {
			return b.FailedBecause(fmt.Sprintf(
				"%s did not contain the following elements: %s",
				match.FormatValue(actual),
				match.FormatValue(remaining),
			))
		}
		return b.Matched()
	})
}

// ContainedIn matches if the checked single value is contained
// in the expected elements.
func ContainedIn[T comparable](expected []T) match.Matcher[T] {
	return match.MatcherFunc[T](func(actual T) match.MatchResult {
		b := match.NewResult("contained_in")
		if indexOf(expected, actual) < 0 {
			return b.FailedBecause(fmt.Sprintf(
				"%s does not contain: %s",
				match.FormatValue(expected),
				match.FormatValue(actual),
			))
		}
		return b.Matched()
	})
}

// indexOf returns the position of element in elements, or -1.
func indexOf[T comparable](elements []T, element T) int {
	for i, candidate := range elements {
		if candidate == element {
			return i
		}
	}
	return -1
}
