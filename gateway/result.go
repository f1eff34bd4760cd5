// SPDX-License-Identifier: MIT

package gateway

import "sort"

// Result is the outcome of one job: measured bit strings and how often each
// was observed. Keys list classical bits highest first, so clbit 0 is the
// rightmost character.
type Result struct {
	JobID   string         `json:"job_id" yaml:"job_id"`
	Backend string         `json:"backend" yaml:"backend"`
	Shots   int            `json:"shots" yaml:"shots"`
	Counts  map[string]int `json:"counts" yaml:"counts"`
}

// Outcomes returns the observed bit strings in lexicographic order.
func (r *Result) Outcomes() []string {
	keys := make([]string, 0, len(r.Counts))
	for k := range r.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Total returns the sum of all counts.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}

	return total
}

// Probabilities returns each outcome's relative frequency. An empty result
// yields an empty map.
func (r *Result) Probabilities() map[string]float64 {
	out := make(map[string]float64, len(r.Counts))
	total := r.Total()
	if total == 0 {
		return out
	}
	for k, n := range r.Counts {
		out[k] = float64(n) / float64(total)
	}

	return out
}

// MostFrequent returns the outcome with the highest count and that count.
// Ties go to the lexicographically smallest outcome; an empty result returns "", 0.
func (r *Result) MostFrequent() (string, int) {
	best, bestN := "", 0
	for _, k := range r.Outcomes() {
		if n := r.Counts[k]; n > bestN {
			best, bestN = k, n
		}
	}

	return best, bestN
}
