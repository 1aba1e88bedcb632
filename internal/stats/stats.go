// Package stats derives per-champion summaries from a filtered participant
// dataset: win rates, combat ratios, gold by outcome and item frequencies.
//
// Every function here is a pure transformation. None of them mutate the
// dataset they receive, log, or perform I/O, so any of them may be called
// concurrently on the same dataset.
package stats

import "math"

// Status describes whether an analysis produced something to show.
type Status int

const (
	// StatusOK means the result holds at least one entry.
	StatusOK Status = iota
	// StatusNoData means the input dataset had no rows to analyse.
	StatusNoData
	// StatusNoEligible means no group reached the minimum sample threshold.
	StatusNoEligible
	// StatusNotFound means the requested character has no rows.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no data"
	case StatusNoEligible:
		return "no eligible groups"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Head returns at most the first n elements of s.
func Head[T any](s []T, n int) []T {
	if n < 0 || n >= len(s) {
		return s
	}
	return s[:n]
}

// Tail returns at most the last n elements of s.
func Tail[T any](s []T, n int) []T {
	if n < 0 || n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
