package match

// Matcher is the capability of checking a value of type T
// against a predicate. Check must be repeatable and
// side-effect-free: combinators may invoke a matcher multiple
// times across a composition, and the checked value must not be
// mutated.
type Matcher[T any] interface {
	// Check evaluates the predicate against the actual value.
	Check(actual T) MatchResult
}

// MatcherFunc adapts a plain function to the Matcher interface
// so closures can be used as matchers.
type MatcherFunc[T any] func(actual T) MatchResult

// Check calls the wrapped function.
func (f MatcherFunc[T]) Check(actual T) MatchResult {
	return f(actual)
}
