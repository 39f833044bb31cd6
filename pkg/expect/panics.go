package expect

import (
	"fmt"

	"digital.vasic.assertions/pkg/match"
)

// Panics matches if invoking the checked function panics. The
// unwind is caught with recover, so a panicking function does
// not abort the test on its own.
func Panics() match.Matcher[func()] {
	return match.MatcherFunc[func()](func(fn func()) (result match.MatchResult) {
		b := match.NewResult("panics")
		defer func() {
			if recover() != nil {
				result = b.Matched()
			}
		}()
		fn()
		return b.FailedBecause("the expression did not panic")
	})
}

// DoesNotPanic matches if invoking the checked function returns
// normally.
func DoesNotPanic() match.Matcher[func()] {
	return match.MatcherFunc[func()](func(fn func()) (result match.MatchResult) {
		b := match.NewResult("does_not_panic")
		defer func() {
			if v := recover(); v != nil {
				result = b.FailedBecause(fmt.Sprintf(
					"the expression panicked: %s",
					match.FormatValue(v),
				))
			}
		}()
		fn()
		return b.Matched()
	})
}
