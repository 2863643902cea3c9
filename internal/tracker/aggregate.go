package tracker

import "github.com/abhisek/brainrot/internal/content"

// Aggregate folds logs into total minutes per content type.
func Aggregate(logs []content.ContentLog) map[string]int {
	totals := make(map[string]int)
	for _, l := range logs {
		totals[l.Type] += l.Duration
	}
	return totals
}

// Share is one row of a breakdown.
type Share struct {
	Type    string
	Minutes int
	Percent float64
}

// Breakdown returns per-type totals in first-appearance order with each
// type's share of the overall minutes.
func Breakdown(logs []content.ContentLog) []Share {
	totals := Aggregate(logs)

	var grand int
	for _, m := range totals {
		grand += m
	}

	seen := make(map[string]bool, len(totals))
	shares := make([]Share, 0, len(totals))
	for _, l := range logs {
		if seen[l.Type] {
			continue
		}
		seen[l.Type] = true

		s := Share{Type: l.Type, Minutes: totals[l.Type]}
		if grand > 0 {
			s.Percent = float64(s.Minutes) * 100 / float64(grand)
		}
		shares = append(shares, s)
	}
	return shares
}

// TotalMinutes sums every entry.
func TotalMinutes(logs []content.ContentLog) int {
	var n int
	for _, l := range logs {
		n += l.Duration
	}
	return n
}
