// Package report turns failed match results into readable
// diagnostics and aggregates assertion outcomes into run
// summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"digital.vasic.assertions/pkg/match"
)

// Location identifies the source position of an assertion.
type Location struct {
	File string
	Line int
}

// String returns "file:line", or the empty string for the zero
// Location.
func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

var (
	headerColor = color.New(color.FgRed, color.Bold)
	labelColor  = color.New(color.FgCyan)
)

// FormatFailure renders a failed MatchResult as a multi-line
// diagnostic block. The optional location and message are
// included when present. Color is applied only when the output
// is a terminal.
func FormatFailure(
	r match.MatchResult,
	loc Location,
	message string,
) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(headerColor.Sprintf(
		"Failed assertion of matcher: %s", r.Matcher,
	))
	sb.WriteString("\n")

	if at := loc.String(); at != "" {
		sb.WriteString(fmt.Sprintf("  At: %s\n", at))
	}

	if r.Compared {
		sb.WriteString(fmt.Sprintf(
			"  %s %s\n",
			labelColor.Sprint("Expected:"),
			match.FormatValue(r.Expected),
		))
		sb.WriteString(fmt.Sprintf(
			"  %s %s\n",
			labelColor.Sprint("Got:"),
			match.FormatValue(r.Actual),
		))
		if diff := diffStrings(r.Expected, r.Actual); diff != "" {
			sb.WriteString("  Diff:\n")
			sb.WriteString(indent(diff, "    "))
		}
	} else {
		sb.WriteString(fmt.Sprintf(
			"  Because: %s\n", r.Reason,
		))
	}

	if message != "" {
		sb.WriteString(fmt.Sprintf(
			"  Message: %s\n", message,
		))
	}
	return sb.String()
}

// diffStrings produces a unified diff for multi-line string
// comparisons. Other value kinds yield no diff.
func diffStrings(expected, actual any) string {
	expectedStr, ok := expected.(string)
	if !ok {
		return ""
	}
	actualStr, ok := actual.(string)
	if !ok {
		return ""
	}
	if !strings.Contains(expectedStr, "\n") &&
		!strings.Contains(actualStr, "\n") {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expectedStr),
		B:        difflib.SplitLines(actualStr),
		FromFile: "Expected",
		ToFile:   "Got",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return diff
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
