package match

// AllMatcher is the conjunction of an ordered sequence of
// matchers over the same input type. The sequence is evaluated
// left-to-right and short-circuits on the first failure, which
// is propagated unchanged.
type AllMatcher[T any] struct {
	matchers []Matcher[T]
}

// AllOf creates the conjunction of the given matchers. With no
// matchers the conjunction vacuously matches.
func AllOf[T any](matchers ...Matcher[T]) *AllMatcher[T] {
	return &AllMatcher[T]{matchers: matchers}
}

// And returns a new conjunction extended by the given matcher.
// The receiver is not modified, so partially built chains can
// be reused.
func (a *AllMatcher[T]) And(matcher Matcher[T]) *AllMatcher[T] {
	chained := make([]Matcher[T], 0, len(a.matchers)+1)
	chained = append(chained, a.matchers...)
	chained = append(chained, matcher)
	return &AllMatcher[T]{matchers: chained}
}

// Check evaluates the matchers in order, returning the first
// failure or a match under the name "all_of".
func (a *AllMatcher[T]) Check(actual T) MatchResult {
	for _, m := range a.matchers {
		if r := m.Check(actual); !r.Matched {
			return r
		}
	}
	return NewResult("all_of").Matched()
}

// AnyMatcher is the disjunction of an ordered sequence of
// matchers over the same input type. The sequence is evaluated
// left-to-right and short-circuits on the first success, which
// is reported under the generic name "any_of". If every matcher
// fails, the last failure is returned.
type AnyMatcher[T any] struct {
	matchers []Matcher[T]
}

// AnyOf creates the disjunction of the given matchers. With no
// matchers the disjunction fails.
func AnyOf[T any](matchers ...Matcher[T]) *AnyMatcher[T] {
	return &AnyMatcher[T]{matchers: matchers}
}

// Or returns a new disjunction extended by the given matcher.
// The receiver is not modified.
func (a *AnyMatcher[T]) Or(matcher Matcher[T]) *AnyMatcher[T] {
	chained := make([]Matcher[T], 0, len(a.matchers)+1)
	chained = append(chained, a.matchers...)
	chained = append(chained, matcher)
	return &AnyMatcher[T]{matchers: chained}
}

// Check evaluates the matchers in order until one matches.
func (a *AnyMatcher[T]) Check(actual T) MatchResult {
	last := NewResult("any_of").FailedBecause(
		"no matchers to evaluate",
	)
	for _, m := range a.matchers {
		r := m.Check(actual)
		if r.Matched {
			return NewResult("any_of").Matched()
		}
		last = r
	}
	return last
}
