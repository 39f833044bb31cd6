// Package expect provides the assertion surface of the
// assertions module: immediate fatal assertions, and deferred
// expectations which evaluate eagerly but report at an explicit
// checkpoint or at the end of the test.
package expect

import (
	"runtime"

	"digital.vasic.assertions/pkg/match"
	"digital.vasic.assertions/pkg/report"
)

// TB is the subset of testing.TB used by the assertion surface.
// *testing.T and *testing.B satisfy it.
type TB interface {
	Helper()
	Error(args ...any)
	Fatal(args ...any)
	Cleanup(func())
}

// That checks the actual value against the matcher and aborts
// the test via t.Fatal on failure.
func That[T any](
	t TB,
	actual T,
	matcher match.Matcher[T],
	opts ...Option,
) {
	t.Helper()
	cfg := newConfig(opts)
	loc := caller(2)
	r := evaluate(cfg, loc, actual, matcher)
	if !r.Matched {
		t.Fatal(report.FormatFailure(r, loc, cfg.message))
	}
}

// Expectation is a deferred assertion. The matcher is evaluated
// eagerly at construction; only the reporting is deferred. An
// Expectation is in one of two terminal states: satisfied, or
// failed with the assertion's name, source location and
// optional message.
type Expectation struct {
	t        TB
	result   match.MatchResult
	message  string
	location report.Location
	verified bool
}

// Expect checks the actual value against the matcher and
// returns an Expectation instead of reporting immediately. If
// the expectation is never verified explicitly, it verifies
// itself when the test finishes. Verification is idempotent, so
// an expectation that was already reported stays silent during
// cleanup.
func Expect[T any](
	t TB,
	actual T,
	matcher match.Matcher[T],
	opts ...Option,
) *Expectation {
	t.Helper()
	cfg := newConfig(opts)
	loc := caller(2)
	e := &Expectation{
		t:        t,
		result:   evaluate(cfg, loc, actual, matcher),
		message:  cfg.message,
		location: loc,
	}
	t.Cleanup(e.Verify)
	return e
}

// Verify consumes the expectation, reporting the failure via
// t.Error if it is in the failed state. Subsequent calls are
// no-ops.
func (e *Expectation) Verify() {
	if e.verified {
		return
	}
	e.verified = true
	if !e.result.Matched {
		e.t.Error(report.FormatFailure(
			e.result, e.location, e.message,
		))
	}
}

// Satisfied reports whether the expectation is in the satisfied
// state. It does not consume the expectation.
func (e *Expectation) Satisfied() bool {
	return e.result.Matched
}

// True checks a boolean expression and aborts the test via
// t.Fatal if it is false. The message explains the expectation.
func True(t TB, condition bool, message string) {
	t.Helper()
	cfg := newConfig(nil)
	loc := caller(2)
	r := evaluate(cfg, loc, condition, truthy())
	if !r.Matched {
		t.Fatal(report.FormatFailure(r, loc, message))
	}
}

// ExpectTrue checks a boolean expression and returns a deferred
// Expectation for it.
func ExpectTrue(
	t TB,
	condition bool,
	message string,
) *Expectation {
	t.Helper()
	cfg := newConfig(nil)
	loc := caller(2)
	e := &Expectation{
		t:        t,
		result:   evaluate(cfg, loc, condition, truthy()),
		message:  message,
		location: loc,
	}
	t.Cleanup(e.Verify)
	return e
}

// truthy matches a true boolean expression.
func truthy() match.Matcher[bool] {
	return match.MatcherFunc[bool](func(actual bool) match.MatchResult {
		b := match.NewResult("expression")
		if actual {
			return b.Matched()
		}
		return b.FailedBecause("expression is false")
	})
}

// evaluate runs the matcher once and feeds the configured
// logger and recorder.
func evaluate[T any](
	cfg config,
	loc report.Location,
	actual T,
	matcher match.Matcher[T],
) match.MatchResult {
	r := matcher.Check(actual)

	cfg.logger.Debug().
		Str("matcher", r.Matcher).
		Bool("matched", r.Matched).
		Str("location", loc.String()).
		Msg("matcher evaluated")

	if cfg.recorder != nil {
		cfg.recorder.Record(r, loc)
	}
	return r
}

// caller resolves the source location skip frames up the stack.
func caller(skip int) report.Location {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return report.Location{}
	}
	return report.Location{File: file, Line: line}
}
