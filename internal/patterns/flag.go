package patterns

import "sort"

// Severity orders flags from advisory to disqualifying.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMid      Severity = "mid"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMid:      1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns the numeric severity order (higher is worse).
func (s Severity) Rank() int { return severityRank[s] }

// Flag is one fired structural pattern. Produced by exactly one detector;
// never mutated after construction.
type Flag struct {
	ID       string
	Title    string
	Category string
	Severity Severity
	Score    float64
	Evidence []string
	Detail   map[string]any
}

// SortFlags orders flags deterministically: severity rank descending, then
// score descending, then id ascending. Required for reproducible output.
func SortFlags(flags []Flag) {
	sort.Slice(flags, func(i, j int) bool {
		a, b := flags[i], flags[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ID < b.ID
	})
}

// clampEvidence trims the evidence list to the six snippet limit.
func clampEvidence(ev []string) []string {
	if len(ev) > 6 {
		return ev[:6]
	}
	return ev
}
