package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"digital.vasic.assertions/pkg/match"
)

// fileCheck pairs a file name with a matcher applied to the
// file's full path.
type fileCheck struct {
	name    string
	matcher match.Matcher[string]
}

// StructureMatcher checks a directory tree against a declared
// set of files and sub directories. By default extra entries
// are ignored; in exhaustive mode every entry of the directory
// must be declared.
type StructureMatcher struct {
	name       string
	files      []fileCheck
	subDirs    []*StructureMatcher
	exhaustive bool
}

// Structure creates an empty, non-exhaustive StructureMatcher
// targeting the checked path directly.
func Structure() *StructureMatcher {
	return &StructureMatcher{}
}

// File declares a file with the given name inside the directory
// and the matcher to check its path with. Note that no
// assumption is made whether the path points to a valid entry;
// that is the obligation of the wrapped matcher.
func (s *StructureMatcher) File(
	name string,
	matcher match.Matcher[string],
) *StructureMatcher {
	s.files = append(s.files, fileCheck{
		name:    name,
		matcher: matcher,
	})
	return s
}

// Dir declares a sub directory with the given name, checked
// recursively by the given structure.
func (s *StructureMatcher) Dir(
	name string,
	sub *StructureMatcher,
) *StructureMatcher {
	child := *sub
	child.name = name
	s.subDirs = append(s.subDirs, &child)
	return s
}

// Exhaustive requires that every entry of the directory is
// declared. It applies to this directory only, not to its sub
// directories.
func (s *StructureMatcher) Exhaustive() *StructureMatcher {
	s.exhaustive = true
	return s
}

// Check verifies the declared structure against the directory
// at the checked path.
func (s *StructureMatcher) Check(dirPath string) match.MatchResult {
	b := match.NewResult("fs_structure")
	dir := filepath.Join(dirPath, s.name)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return b.FailedBecause(fmt.Sprintf(
			"path `%s` is not a directory", dir,
		))
	}

	listing, err := os.ReadDir(dir)
	if err != nil {
		return b.FailedBecause(err.Error())
	}
	entries := make(map[string]bool, len(listing))
	for _, entry := range listing {
		entries[entry.Name()] = true
	}

	for _, file := range s.files {
		delete(entries, file.name)
		filePath := filepath.Join(dir, file.name)
		if r := file.matcher.Check(filePath); !r.Matched {
			r.Matcher = fmt.Sprintf(
				"`%s` for file `%s`", r.Matcher, filePath,
			)
			return r
		}
	}

	for _, sub := range s.subDirs {
		delete(entries, sub.name)
		if r := sub.Check(dir); !r.Matched {
			return r
		}
	}

	if s.exhaustive && len(entries) > 0 {
		unlisted := make([]string, 0, len(entries))
		for name := range entries {
			unlisted = append(unlisted, name)
		}
		sort.Strings(unlisted)
		return b.FailedBecause(fmt.Sprintf(
			"matchers for directory `%s` should be exhaustive but the following entries are not listed: %s",
			dir, strings.Join(unlisted, ", "),
		))
	}
	return b.Matched()
}
