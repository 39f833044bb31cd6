package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"digital.vasic.assertions/pkg/match"
)

// Outcome captures one recorded assertion result.
type Outcome struct {
	Matcher  string    `json:"matcher"`
	Passed   bool      `json:"passed"`
	Reason   string    `json:"reason,omitempty"`
	Location string    `json:"location,omitempty"`
	Time     time.Time `json:"time"`
}

// Summary aggregates the outcomes of an assertion run.
type Summary struct {
	GeneratedAt time.Time `json:"generated_at"`
	Total       int       `json:"total"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	PassRate    float64   `json:"pass_rate"`
	Outcomes    []Outcome `json:"outcomes"`
}

// Recorder accumulates assertion outcomes. It is safe for
// concurrent use from parallel tests.
type Recorder struct {
	mu       sync.Mutex
	outcomes []Outcome
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends the outcome of a single match result.
func (r *Recorder) Record(
	result match.MatchResult,
	loc Location,
) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outcomes = append(r.outcomes, Outcome{
		Matcher:  result.Matcher,
		Passed:   result.Matched,
		Reason:   result.Reason,
		Location: loc.String(),
		Time:     time.Now(),
	})
}

// Outcomes returns a copy of the recorded outcomes.
func (r *Recorder) Outcomes() []Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Outcome(nil), r.outcomes...)
}

// BuildSummary aggregates the recorded outcomes.
func (r *Recorder) BuildSummary() *Summary {
	outcomes := r.Outcomes()

	summary := &Summary{
		GeneratedAt: time.Now(),
		Total:       len(outcomes),
		Outcomes:    outcomes,
	}
	for _, o := range outcomes {
		if o.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	if summary.Total > 0 {
		summary.PassRate =
			float64(summary.Passed) / float64(summary.Total)
	}
	return summary
}

// WriteJSON writes the summary as indented JSON.
func (r *Recorder) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r.BuildSummary(), "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf(
			"failed to write summary: %w", err,
		)
	}
	return nil
}

// SaveSummary writes the summary to a timestamped JSON file in
// the given output directory and returns its path.
func (r *Recorder) SaveSummary(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	path := filepath.Join(
		outputDir,
		fmt.Sprintf(
			"assertions_%s.json",
			time.Now().Format("20060102_150405"),
		),
	)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf(
			"failed to create summary file: %w", err,
		)
	}
	defer f.Close()

	if err := r.WriteJSON(f); err != nil {
		return "", err
	}
	return path, nil
}
