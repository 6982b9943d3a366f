package report

import (
	"encoding/json"
	"math"
)

// Report collects the results of one batch in the order tools ran.
type Report struct {
	results  []Result
	duration float64
	recorded bool
}

type Summary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Missing  int     `json:"missing"`
	Duration float64 `json:"duration"`
}

func New() *Report {
	return &Report{}
}

func (r *Report) Add(result Result) {
	r.results = append(r.results, result)
}

// RecordDuration sets the batch duration in seconds. Only the first call
// counts.
func (r *Report) RecordDuration(seconds float64) {
	if r.recorded {
		return
	}
	r.duration = seconds
	r.recorded = true
}

func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

func (r *Report) Duration() float64 {
	return r.duration
}

func (r *Report) Empty() bool {
	return len(r.results) == 0
}

// Success is true when every executed result succeeded. Skipped and missing
// results do not count.
func (r *Report) Success() bool {
	for _, result := range r.results {
		if result.Executed() && !result.Success {
			return false
		}
	}
	return true
}

func (r *Report) MaxExitStatus() int {
	maxStatus := 0
	for _, result := range r.results {
		if result.Executed() && result.ExitStatus > maxStatus {
			maxStatus = result.ExitStatus
		}
	}
	return maxStatus
}

func (r *Report) MissingResults() []Result {
	var out []Result
	for _, result := range r.results {
		if result.IsMissing() {
			out = append(out, result)
		}
	}
	return out
}

func (r *Report) Missing() bool {
	return len(r.MissingResults()) > 0
}

func (r *Report) Summary() Summary {
	summary := Summary{Total: len(r.results), Duration: round(r.duration)}
	for _, result := range r.results {
		switch {
		case result.IsMissing():
			summary.Missing++
		case result.Success:
			summary.Passed++
		default:
			summary.Failed++
		}
	}
	return summary
}

func (r *Report) MarshalJSON() ([]byte, error) {
	results := r.results
	if results == nil {
		results = []Result{}
	}

	return json.Marshal(struct {
		Success bool     `json:"success"`
		Summary Summary  `json:"summary"`
		Results []Result `json:"results"`
	}{
		Success: r.Success(),
		Summary: r.Summary(),
		Results: results,
	})
}

func round(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}
