// Package match provides the core matcher capability for the
// assertions module: a typed predicate that checks a value and
// produces a structured match/fail outcome with a human-readable
// diagnostic, plus the combinators for composing matchers.
package match

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// MatchResult captures the outcome of a single matcher
// evaluation. It is an immutable value produced per check and
// consumed by the assertion surface or a combinator parent.
type MatchResult struct {
	// Matcher is the name of the matcher that produced the
	// result.
	Matcher string

	// Matched indicates whether the checked value satisfied
	// the matcher.
	Matched bool

	// Reason is a human-readable explanation of a failure. It
	// is empty for matched results.
	Reason string

	// Compared marks results produced by a comparison failure.
	// Only then do Expected and Actual carry the compared
	// values.
	Compared bool

	// Expected is the value the matcher expected.
	Expected any

	// Actual is the value that was checked.
	Actual any
}

// ResultBuilder constructs MatchResult values for a named
// matcher.
type ResultBuilder struct {
	name string
}

// NewResult creates a ResultBuilder for the matcher with the
// given name.
func NewResult(name string) ResultBuilder {
	return ResultBuilder{name: name}
}

// Matched produces a successful result.
func (b ResultBuilder) Matched() MatchResult {
	return MatchResult{
		Matcher: b.name,
		Matched: true,
	}
}

// FailedBecause produces a failed result with the given reason.
func (b ResultBuilder) FailedBecause(reason string) MatchResult {
	return MatchResult{
		Matcher: b.name,
		Reason:  reason,
	}
}

// FailedComparison produces a failed result carrying the actual
// and expected values of a comparison.
func (b ResultBuilder) FailedComparison(
	actual any,
	expected any,
) MatchResult {
	return MatchResult{
		Matcher:  b.name,
		Compared: true,
		Expected: expected,
		Actual:   actual,
		Reason: fmt.Sprintf(
			"expected %s, got %s",
			FormatValue(expected),
			FormatValue(actual),
		),
	}
}

// valueConfig renders diagnostic values without pointer
// addresses so that repeated checks produce identical output.
var valueConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// FormatValue renders a value for inclusion in a diagnostic
// message.
func FormatValue(v any) string {
	return valueConfig.Sprintf("%#v", v)
}
