package variant

import (
	"errors"
	"fmt"

	"digital.vasic.assertions/pkg/match"
)

// Result carries the value/error pair of a fallible call so
// matchers can inspect either side.
type Result[T any] struct {
	Value T
	Err   error
}

// Of wraps a two-value return into a Result:
//
//	variant.Of(strconv.Atoi("42"))
func Of[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Err: err}
}

// Ok matches the value of a successful Result against the inner
// matcher. A Result carrying an error fails.
func Ok[T any](inner match.Matcher[T]) match.Matcher[Result[T]] {
	return match.MatcherFunc[Result[T]](func(actual Result[T]) match.MatchResult {
		if actual.Err != nil {
			return match.NewResult("maybe_ok").FailedBecause(
				"passed Result is an error; cannot evaluate nested matcher",
			)
		}
		return inner.Check(actual.Value)
	})
}

// Err matches the error of a failed Result against the inner
// matcher. A successful Result fails.
func Err[T any](
	inner match.Matcher[error],
) match.Matcher[Result[T]] {
	return match.MatcherFunc[Result[T]](func(actual Result[T]) match.MatchResult {
		if actual.Err == nil {
			return match.NewResult("maybe_err").FailedBecause(
				"passed Result is not an error; cannot evaluate nested matcher",
			)
		}
		return inner.Check(actual.Err)
	})
}

// ErrIs matches an error that is, or wraps, the target error in
// the sense of errors.Is.
func ErrIs(target error) match.Matcher[error] {
	return match.MatcherFunc[error](func(actual error) match.MatchResult {
		b := match.NewResult("err_is")
		if errors.Is(actual, target) {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"error '%v' does not wrap '%v'", actual, target,
		))
	})
}
