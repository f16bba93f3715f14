// Package risk evaluates independent risk profiles over the detector bank's
// output. Profiles are value objects sharing the {when, score, explain}
// contract; the engine runs them all, isolates failures and sorts the
// surviving results deterministically.
package risk

import (
	"fmt"
	"sort"

	"github.com/daseul-kim/rejectlens/internal/patterns"
	"go.uber.org/zap"
)

// Layers group profiles into hard gates and ordinary risks.
const (
	LayerGate = "gate"
	LayerRisk = "risk"
)

// Explanation is the human-readable part of a triggered profile.
type Explanation struct {
	Title        string
	Why          []string
	Fix          []string
	EvidenceKeys []string
	Notes        []string
}

// Profile is one independent risk check. When decides whether it triggers,
// primarily from the flag bank with a stricter metrics fallback; Score is its
// dynamic weight in [0,1]; Priority is static, author-assigned.
type Profile struct {
	ID       string
	Group    string
	Layer    string
	Priority int

	When    func(*Input) bool
	Score   func(*Input) float64
	Explain func(*Input) Explanation
}

// Result is a triggered profile.
type Result struct {
	ID       string
	Group    string
	Layer    string
	Priority int
	Score    float64
	Explain  Explanation
}

// Input bundles the detector context with an indexed view of the fired flags.
type Input struct {
	Ctx   *patterns.Context
	flags map[string]*patterns.Flag
}

// NewInput indexes the flag list for profile lookups.
func NewInput(ctx *patterns.Context, flags []patterns.Flag) *Input {
	in := &Input{Ctx: ctx, flags: make(map[string]*patterns.Flag, len(flags))}
	for i := range flags {
		in.flags[flags[i].ID] = &flags[i]
	}
	return in
}

// Flag returns the fired flag with the given id, or nil.
func (in *Input) Flag(id string) *patterns.Flag { return in.flags[id] }

// HasFlag reports whether the detector with the given id fired.
func (in *Input) HasFlag(id string) bool { return in.flags[id] != nil }

// flagScore returns the flag's dynamic score, or the conservative fallback
// when the profile triggered through its metrics fallback path.
func (in *Input) flagScore(id string, fallback float64) float64 {
	if f := in.Flag(id); f != nil {
		return f.Score
	}
	return fallback
}

// Evaluate runs every registered profile. A profile that panics is skipped;
// untriggered profiles contribute nothing. Results are sorted by static
// priority descending, then score descending, then id ascending.
func Evaluate(in *Input, logger *zap.Logger) []Result {
	var results []Result

	for _, p := range registry {
		res, err := runIsolated(p, in)
		if err != nil {
			if logger != nil {
				logger.Warn("risk profile failed; skipping",
					zap.String("profile", p.ID),
					zap.Error(err),
				)
			}
			continue
		}
		if res != nil {
			results = append(results, *res)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ID < b.ID
	})

	return results
}

func runIsolated(p Profile, in *Input) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("profile %s panicked: %v", p.ID, r)
		}
	}()

	if !p.When(in) {
		return nil, nil
	}

	return &Result{
		ID:       p.ID,
		Group:    p.Group,
		Layer:    p.Layer,
		Priority: p.Priority,
		Score:    clamp01(p.Score(in)),
		Explain:  p.Explain(in),
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
