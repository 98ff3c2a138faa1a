package metrics

import "fmt"

// Thresholds defines pass/fail criteria for an analysis run. Nil fields are
// not checked.
type Thresholds struct {
	MinPDR         *float64 `yaml:"min_pdr"`
	MaxCollisions  *int     `yaml:"max_collisions"`
	MinRecvPackets *int     `yaml:"min_recv_packets"`
}

// ThresholdResult is the outcome of a single threshold check.
type ThresholdResult struct {
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Threshold string `json:"threshold"`
	Actual    string `json:"actual"`
}

// ThresholdResults contains all threshold check results.
type ThresholdResults struct {
	Passed  bool              `json:"passed"`
	Results []ThresholdResult `json:"results"`
}

// Check evaluates all configured thresholds against a computed report.
func (t *Thresholds) Check(rep *Report) *ThresholdResults {
	if t == nil {
		return &ThresholdResults{Passed: true}
	}

	results := &ThresholdResults{
		Passed:  true,
		Results: make([]ThresholdResult, 0),
	}

	if t.MinPDR != nil {
		results.add(ThresholdResult{
			Name:      "pdr",
			Passed:    rep.PDR >= *t.MinPDR,
			Threshold: fmt.Sprintf(">= %g", *t.MinPDR),
			Actual:    fmt.Sprintf("%g", rep.PDR),
		})
	}
	if t.MaxCollisions != nil {
		results.add(ThresholdResult{
			Name:      "total_collisions",
			Passed:    rep.TotalCollisions <= *t.MaxCollisions,
			Threshold: fmt.Sprintf("<= %d", *t.MaxCollisions),
			Actual:    fmt.Sprintf("%d", rep.TotalCollisions),
		})
	}
	if t.MinRecvPackets != nil {
		results.add(ThresholdResult{
			Name:      "recv_packets",
			Passed:    rep.RecvPackets >= *t.MinRecvPackets,
			Threshold: fmt.Sprintf(">= %d", *t.MinRecvPackets),
			Actual:    fmt.Sprintf("%d", rep.RecvPackets),
		})
	}
	return results
}

func (r *ThresholdResults) add(result ThresholdResult) {
	if !result.Passed {
		r.Passed = false
	}
	r.Results = append(r.Results, result)
}

// Violations returns only the failed threshold results.
func (r *ThresholdResults) Violations() []ThresholdResult {
	violations := make([]ThresholdResult, 0)
	for _, result := range r.Results {
		if !result.Passed {
			violations = append(violations, result)
		}
	}
	return violations
}
