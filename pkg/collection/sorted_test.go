package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedAscending(t *testing.T) {
	tests := []struct {
		name    string
		actual  []int
		matched bool
	}{
		{"weakly ascending", []int{1, 2, 2, 4}, true},
		{"strictly ascending", []int{1, 2, 3, 4}, true},
		{"not sorted", []int{1, 3, 4, 2}, false},
		{"descending", []int{4, 3, 2, 1}, false},
		{"empty", []int{}, true},
		{"singleton", []int{7}, true},
		{"all equal", []int{2, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SortedAscending[int]().Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
		})
	}
}

func TestSortedStrictlyAscending(t *testing.T) {
	tests := []struct {
		name    string
		actual  []int
		matched bool
	}{
		{"strictly ascending", []int{1, 2, 3, 4}, true},
		{"duplicate rejected", []int{1, 2, 2, 3}, false},
		{"not sorted", []int{1, 3, 2}, false},
		{"empty", []int{}, true},
		{"singleton", []int{7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SortedStrictlyAscending[int]().Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
		})
	}
}

func TestSortedDescending(t *testing.T) {
	tests := []struct {
		name    string
		actual  []int
		matched bool
	}{
		{"weakly descending", []int{5, 4, 4, 3, 1}, true},
		{"strictly descending", []int{5, 4, 3, 2, 1}, true},
		{"ascending pair", []int{5, 3, 4}, false},
		{"empty", []int{}, true},
		{"singleton", []int{7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SortedDescending[int]().Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
		})
	}
}

func TestSortedStrictlyDescending(t *testing.T) {
	assert.True(
		t,
		SortedStrictlyDescending[int]().
			Check([]int{5, 4, 3, 2, 1}).Matched,
	)
	assert.False(
		t,
		SortedStrictlyDescending[int]().
			Check([]int{5, 4, 4, 3}).Matched,
	)
}

func TestSortedByInAnyOrder(t *testing.T) {
	cmp := func(a, b int) int { return a - b }

	tests := []struct {
		name    string
		actual  []int
		matched bool
	}{
		{"descending", []int{5, 4, 3, 3, 2, 1, 1}, true},
		{"ascending", []int{1, 1, 2, 3, 3, 4, 5}, true},
		{"direction change", []int{1, 2, 3, 2}, false},
		{"leading equals establish later", []int{2, 2, 3, 1}, false},
		{"empty", []int{}, true},
		{"singleton", []int{7}, true},
		{"all equal", []int{2, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SortedByInAnyOrder(cmp).Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
		})
	}
}

func TestSortedStrictlyByInAnyOrder(t *testing.T) {
	cmp := func(a, b int) int { return a - b }

	tests := []struct {
		name    string
		actual  []int
		matched bool
	}{
		{"descending", []int{5, 4, 3, 2, 1}, true},
		{"ascending", []int{1, 2, 3, 4, 5}, true},
		{"equal pair rejected", []int{1, 2, 2, 3}, false},
		{"direction change", []int{1, 2, 3, 2}, false},
		{"empty", []int{}, true},
		{"singleton", []int{7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SortedStrictlyByInAnyOrder(cmp).Check(tt.actual)
			assert.Equal(t, tt.matched, r.Matched)
		})
	}
}

func TestSortedBy_CustomComparison(t *testing.T) {
	byLength := func(a, b string) int {
		return len(a) - len(b)
	}

	r := SortedBy(byLength, Ascending).
		Check([]string{"a", "bb", "cc", "ddd"})
	assert.True(t, r.Matched)

	r = SortedBy(byLength, Descending).
		Check([]string{"a", "bb"})
	assert.False(t, r.Matched)
	assert.Contains(t, r.Reason, "not monotone")
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
}
