// Package fs provides matchers for asserting properties of
// filesystem paths: existence, file/directory kind, file
// content, and recursive directory structures. The filesystem
// is read at check time; any failure to open or read a path is
// reported as a failed match, not as a separate error.
package fs

import (
	"fmt"
	"os"

	"digital.vasic.assertions/pkg/match"
)

// Exists matches if the checked path exists in the filesystem.
func Exists() match.Matcher[string] {
	return match.MatcherFunc[string](func(path string) match.MatchResult {
		b := match.NewResult("path_exists")
		if _, err := os.Stat(path); err != nil {
			return b.FailedBecause(fmt.Sprintf(
				"path `%s` does not exist", path,
			))
		}
		return b.Matched()
	})
}

// IsFile matches if the checked path exists and points to a
// regular file.
func IsFile() match.Matcher[string] {
	return match.MatcherFunc[string](func(path string) match.MatchResult {
		b := match.NewResult("path_is_file")
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return b.FailedBecause(fmt.Sprintf(
				"path `%s` is not a file", path,
			))
		}
		return b.Matched()
	})
}

// IsDir matches if the checked path exists and points to a
// directory.
func IsDir() match.Matcher[string] {
	return match.MatcherFunc[string](func(path string) match.MatchResult {
		b := match.NewResult("path_is_dir")
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return b.FailedBecause(fmt.Sprintf(
				"path `%s` is not a directory", path,
			))
		}
		return b.Matched()
	})
}

// Content matches the contents of the file at the checked path,
// decoded as a string, against the inner matcher.
func Content(
	inner match.Matcher[string],
) match.Matcher[string] {
	return match.MatcherFunc[string](func(path string) match.MatchResult {
		data, err := os.ReadFile(path)
		if err != nil {
			return match.NewResult("content").FailedBecause(
				err.Error(),
			)
		}
		return inner.Check(string(data))
	})
}

// ContentAsBytes matches the raw contents of the file at the
// checked path against the inner matcher.
func ContentAsBytes(
	inner match.Matcher[[]byte],
) match.Matcher[string] {
	return match.MatcherFunc[string](func(path string) match.MatchResult {
		data, err := os.ReadFile(path)
		if err != nil {
			return match.NewResult("content_as_bytes").FailedBecause(
				err.Error(),
			)
		}
		return inner.Check(data)
	})
}
