package fs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"digital.vasic.assertions/pkg/match"
)

// CheckFactory builds a path matcher from the value declared
// for a file entry in a YAML structure document.
type CheckFactory func(value string) match.Matcher[string]

// checkRegistry maps declared check names to factories. It is
// safe for concurrent use.
type checkRegistry struct {
	mu        sync.RWMutex
	factories map[string]CheckFactory
}

var registry = &checkRegistry{
	factories: map[string]CheckFactory{
		"exists": func(_ string) match.Matcher[string] {
			return Exists()
		},
		"is_file": func(_ string) match.Matcher[string] {
			return IsFile()
		},
		"is_dir": func(_ string) match.Matcher[string] {
			return IsDir()
		},
		"content": func(value string) match.Matcher[string] {
			return Content(match.EqualTo(value))
		},
		"content_contains": func(value string) match.Matcher[string] {
			return Content(containsText(value))
		},
	},
}

// RegisterCheck adds a custom named check usable from YAML
// structure documents. It returns an error if the name is
// already registered.
func RegisterCheck(name string, factory CheckFactory) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.factories[name]; exists {
		return fmt.Errorf(
			"check already registered: %s", name,
		)
	}
	registry.factories[name] = factory
	return nil
}

// lookupCheck resolves a named check factory.
func lookupCheck(name string) (CheckFactory, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	factory, ok := registry.factories[name]
	return factory, ok
}

// containsText matches file content containing the given
// substring.
func containsText(expected string) match.Matcher[string] {
	return match.MatcherFunc[string](func(actual string) match.MatchResult {
		b := match.NewResult("content_contains")
		if strings.Contains(actual, expected) {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"content does not contain %q", expected,
		))
	})
}

// fileSpec declares the check applied to a single file entry.
// An empty check defaults to "exists".
type fileSpec struct {
	Check string `yaml:"check"`
	Value string `yaml:"value"`
}

// structureSpec is the YAML document shape for declaring an
// expected directory structure:
//
//	exhaustive: true
//	files:
//	  config.yaml:
//	    check: content_contains
//	    value: "debug:"
//	  README.md: {}
//	dirs:
//	  data:
//	    files:
//	      state.json:
//	        check: is_file
type structureSpec struct {
	Exhaustive bool                     `yaml:"exhaustive"`
	Files      map[string]fileSpec      `yaml:"files"`
	Dirs       map[string]structureSpec `yaml:"dirs"`
}

// StructureFromYAML parses a YAML structure document into a
// StructureMatcher.
func StructureFromYAML(data []byte) (*StructureMatcher, error) {
	var spec structureSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf(
			"failed to parse structure document: %w", err,
		)
	}
	return buildStructure(spec)
}

// buildStructure recursively converts a parsed spec into a
// matcher. Entries are added in name order so diagnostics are
// deterministic.
func buildStructure(
	spec structureSpec,
) (*StructureMatcher, error) {
	s := Structure()
	if spec.Exhaustive {
		s.Exhaustive()
	}

	for _, name := range sortedKeys(spec.Files) {
		file := spec.Files[name]
		checkName := file.Check
		if checkName == "" {
			checkName = "exists"
		}
		factory, ok := lookupCheck(checkName)
		if !ok {
			return nil, fmt.Errorf(
				"unknown check for file %s: %s",
				name, checkName,
			)
		}
		s.File(name, factory(file.Value))
	}

	for _, name := range sortedKeys(spec.Dirs) {
		sub, err := buildStructure(spec.Dirs[name])
		if err != nil {
			return nil, err
		}
		s.Dir(name, sub)
	}
	return s, nil
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
