package collection

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"digital.vasic.assertions/pkg/match"
)

// Order selects the direction a sortedness matcher expects.
type Order int

const (
	// Ascending expects consecutive elements to compare in
	// increasing order.
	Ascending Order = iota

	// Descending expects consecutive elements to compare in
	// decreasing order.
	Descending
)

// String returns the order name.
func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// agrees reports whether the sign of a three-way comparison
// between consecutive elements matches the expected order.
func (o Order) agrees(sign int) bool {
	if o == Descending {
		return sign > 0
	}
	return sign < 0
}

// signOf reduces the order of a pair to the sign of the
// comparison that established it.
func signOf(sign int) int {
	switch {
	case sign < 0:
		return -1
	case sign > 0:
		return 1
	}
	return 0
}

// SortedBy matches if the checked slice is sorted weakly
// monotone in the expected order according to the three-way
// comparison function. Equal consecutive elements are allowed.
// Empty and single-element slices always match.
func SortedBy[T any](
	cmp func(a, b T) int,
	order Order,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("sorted_by")
		for i := 1; i < len(actual); i++ {
			sign := cmp(actual[i-1], actual[i])
			if sign != 0 && !order.agrees(sign) {
				return b.FailedBecause(fmt.Sprintf(
					"ordering is not monotone: cmp(%s, %s) is not %s",
					match.FormatValue(actual[i-1]),
					match.FormatValue(actual[i]),
					order,
				))
			}
		}
		return b.Matched()
	})
}

// SortedStrictlyBy matches if the checked slice is sorted
// strictly monotone in the expected order according to the
// three-way comparison function. Equal consecutive elements are
// rejected. Empty and single-element slices always match.
func SortedStrictlyBy[T any](
	cmp func(a, b T) int,
	order Order,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("sorted_strictly_by")
		for i := 1; i < len(actual); i++ {
			sign := cmp(actual[i-1], actual[i])
			if sign == 0 || !order.agrees(sign) {
				return b.FailedBecause(fmt.Sprintf(
					"ordering is not strictly monotone: cmp(%s, %s) is not strictly %s",
					match.FormatValue(actual[i-1]),
					match.FormatValue(actual[i]),
					order,
				))
			}
		}
		return b.Matched()
	})
}

// SortedByInAnyOrder matches if the checked slice is sorted
// weakly monotone in either direction. The first non-equal
// comparison establishes the expected order; all later
// non-equal comparisons must agree with it.
func SortedByInAnyOrder[T any](
	cmp func(a, b T) int,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("sorted_by_in_any_order")
		established := 0
		for i := 1; i < len(actual); i++ {
			sign := signOf(cmp(actual[i-1], actual[i]))
			if sign == 0 {
				continue
			}
			if established == 0 {
				established = sign
				continue
			}
			if sign != established {
				return b.FailedBecause(fmt.Sprintf(
					"ordering is not monotone: cmp(%s, %s) disagrees with the established order",
					match.FormatValue(actual[i-1]),
					match.FormatValue(actual[i]),
				))
			}
		}
		return b.Matched()
	})
}

// SortedStrictlyByInAnyOrder matches if the checked slice is
// sorted strictly monotone in either direction. Equal
// consecutive elements are rejected; the first comparison
// establishes the expected order.
func SortedStrictlyByInAnyOrder[T any](
	cmp func(a, b T) int,
) match.Matcher[[]T] {
	return match.MatcherFunc[[]T](func(actual []T) match.MatchResult {
		b := match.NewResult("sorted_strictly_by_in_any_order")
		established := 0
		for i := 1; i < len(actual); i++ {
			sign := signOf(cmp(actual[i-1], actual[i]))
			if sign == 0 {
				return b.FailedBecause(fmt.Sprintf(
					"ordering is not strictly monotone: %s and %s compare as equal",
					match.FormatValue(actual[i-1]),
					match.FormatValue(actual[i]),
				))
			}
			if established == 0 {
				established = sign
				continue
			}
			if sign != established {
				return b.FailedBecause(fmt.Sprintf(
					"ordering is not strictly monotone: cmp(%s, %s) disagrees with the established order",
					match.FormatValue(actual[i-1]),
					match.FormatValue(actual[i]),
				))
			}
		}
		return b.Matched()
	})
}

// compare is the natural three-way comparison for ordered
// types.
func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SortedAscending matches if the checked slice is sorted weakly
// ascending.
func SortedAscending[T constraints.Ordered]() match.Matcher[[]T] {
	return SortedBy(compare[T], Ascending)
}

// SortedStrictlyAscending matches if the checked slice is
// sorted strictly ascending.
func SortedStrictlyAscending[T constraints.Ordered]() match.Matcher[[]T] {
	return SortedStrictlyBy(compare[T], Ascending)
}

// SortedDescending matches if the checked slice is sorted
// weakly descending.
func SortedDescending[T constraints.Ordered]() match.Matcher[[]T] {
	return SortedBy(compare[T], Descending)
}

// SortedStrictlyDescending matches if the checked slice is
// sorted strictly descending.
func SortedStrictlyDescending[T constraints.Ordered]() match.Matcher[[]T] {
	return SortedStrictlyBy(compare[T], Descending)
}
