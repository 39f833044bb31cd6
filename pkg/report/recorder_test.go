package report

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assertions/pkg/match"
)

func TestRecorder_BuildSummary(t *testing.T) {
	rec := NewRecorder()

	rec.Record(match.NewResult("equal").Matched(), Location{})
	rec.Record(
		match.NewResult("less_than").FailedBecause("nope"),
		Location{File: "a_test.go", Line: 3},
	)
	rec.Record(match.NewResult("has_key").Matched(), Location{})

	summary := rec.BuildSummary()

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.InDelta(t, 2.0/3.0, summary.PassRate, 1e-9)
	assert.Equal(
		t, "a_test.go:3", summary.Outcomes[1].Location,
	)
}

func TestRecorder_EmptySummary(t *testing.T) {
	summary := NewRecorder().BuildSummary()

	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.PassRate)
}

func TestRecorder_WriteJSON(t *testing.T) {
	rec := NewRecorder()
	rec.Record(match.NewResult("equal").Matched(), Location{})

	var buf bytes.Buffer
	require.NoError(t, rec.WriteJSON(&buf))

	var summary Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, "equal", summary.Outcomes[0].Matcher)
}

func TestRecorder_SaveSummary(t *testing.T) {
	rec := NewRecorder()
	rec.Record(match.NewResult("equal").Matched(), Location{})

	path, err := rec.SaveSummary(t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 1, summary.Passed)
}

func TestRecorder_ConcurrentRecord(t *testing.T) {
	rec := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Record(
				match.NewResult("equal").Matched(),
				Location{},
			)
		}()
	}
	wg.Wait()

	assert.Len(t, rec.Outcomes(), 16)
}

func TestRecorder_OutcomesReturnsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.Record(match.NewResult("equal").Matched(), Location{})

	outcomes := rec.Outcomes()
	outcomes[0].Matcher = "mutated"

	assert.Equal(t, "equal", rec.Outcomes()[0].Matcher)
}
