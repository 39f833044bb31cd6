package variant

import "digital.vasic.assertions/pkg/match"

// Some matches the value behind an optional pointer against the
// inner matcher. A nil pointer fails.
func Some[T any](inner match.Matcher[T]) match.Matcher[*T] {
	return match.MatcherFunc[*T](func(actual *T) match.MatchResult {
		if actual == nil {
			return match.NewResult("maybe_some").FailedBecause(
				"passed pointer is nil; cannot evaluate nested matcher",
			)
		}
		return inner.Check(*actual)
	})
}

// None matches if the optional pointer is nil.
func None[T any]() match.Matcher[*T] {
	return match.MatcherFunc[*T](func(actual *T) match.MatchResult {
		b := match.NewResult("maybe_none")
		if actual == nil {
			return b.Matched()
		}
		return b.FailedBecause(
			"passed pointer is not nil",
		)
	})
}
