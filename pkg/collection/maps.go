package collection

import (
	"fmt"

	"digital.vasic.assertions/pkg/match"
)

// HasEntry matches if the checked map contains the given
// key/value pair. On failure the diagnostic lists the values
// stored under the same key and the keys storing the same
// value.
func HasEntry[K comparable, V comparable](
	key K,
	value V,
) match.Matcher[map[K]V] {
	return match.MatcherFunc[map[K]V](func(actual map[K]V) match.MatchResult {
		b := match.NewResult("has_entry")
		var sameKeys []V
		var sameValues []K
		for k, v := range actual {
			if k == key && v == value {
				return b.Matched()
			}
			if k == key {
				sameKeys = append(sameKeys, v)
			}
			if v == value {
				sameValues = append(sameValues, k)
			}
		}
		return b.FailedBecause(fmt.Sprintf(
			"entry (%s, %s) not found; values with same key: %s; keys with same value: %s",
			match.FormatValue(key),
			match.FormatValue(value),
			match.FormatValue(sameKeys),
			match.FormatValue(sameValues),
		))
	})
}

// HasKey matches if the checked map contains the given key.
func HasKey[K comparable, V any](key K) match.Matcher[map[K]V] {
	return match.MatcherFunc[map[K]V](func(actual map[K]V) match.MatchResult {
		b := match.NewResult("has_key")
		if _, ok := actual[key]; ok {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf(
			"no entry with key %s found",
			match.FormatValue(key),
		))
	})
}

// HasValue matches if the checked map contains the given value
// under any key.
func HasValue[K comparable, V comparable](
	value V,
) match.Matcher[map[K]V] {
	return match.MatcherFunc[map[K]V](func(actual map[K]V) match.MatchResult {
		b := match.NewResult("has_value")
		for _, v := range actual {
			if v == value {
				return b.Matched()
			}
		}
		return b.FailedBecause(fmt.Sprintf(
			"no entry with value %s found",
			match.FormatValue(value),
		))
	})
}
