// Package hypothesis assembles, scores and ranks the candidate explanations
// for a rejection. The output is always a falsifiable, ordered hypothesis
// list, never a verdict.
package hypothesis

import (
	"sort"

	"github.com/daseul-kim/rejectlens/internal/ai"
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/patterns"
	"github.com/daseul-kim/rejectlens/internal/score"
	"github.com/daseul-kim/rejectlens/internal/signals"
)

// MaxHypotheses bounds the ranked output.
const MaxHypotheses = 6

// Hypothesis is one ranked candidate explanation. Value object, recreated on
// every run.
type Hypothesis struct {
	ID      string
	Title   string
	Why     string
	Signals []string
	Actions []string
	Counter string

	Impact        float64
	Confidence    float64
	EvidenceBoost float64
	Priority      float64
}

// Input carries everything the builder scores against.
type Input struct {
	Facts     *facts.InputFacts
	Keyword   *signals.KeywordSignals
	Proof     *signals.ProofSignals
	Career    *signals.CareerSignals
	Objective score.Objective
	Flags     []patterns.Flag
	Enh       *ai.Enhancement
}

// correlationDrivers maps driver hypotheses to the dependents whose priority
// they boost when the driver's normalized priority clears the threshold.
var correlationDrivers = map[string][]string{
	"gap-risk":     {"tenure-risk"},
	"fit-mismatch": {"experience-level"},
}

const (
	correlationThreshold = 0.55
	correlationMaxFactor = 1.25
	correlationMinFactor = 0.75

	conflictSinglePenalty = 0.85
	conflictDoublePenalty = 0.75
)

// Build assembles the stage-gated candidate list, scores each candidate and
// returns the top hypotheses sorted by final priority.
func Build(in *Input) []Hypothesis {
	var defs []definition
	if knockoutDefinition.gate(in) {
		defs = append(defs, knockoutDefinition)
	}
	for _, d := range catalog {
		if d.gate(in) {
			defs = append(defs, d)
		}
	}

	sc := in.Facts.SelfCheck
	out := make([]Hypothesis, 0, len(defs))
	for _, d := range defs {
		boost := evidenceBoost(in.Flags, d.categories)
		confidence := clamp01(d.base(in)*selfCheckMultiplier(d.rating(sc)) + boost)
		confidence = clamp01(confidence + in.Enh.Delta(d.id))

		out = append(out, Hypothesis{
			ID:            d.id,
			Title:         d.title,
			Why:           d.why,
			Signals:       d.signals,
			Actions:       d.actions,
			Counter:       d.counter,
			Impact:        d.impact,
			Confidence:    confidence,
			EvidenceBoost: boost,
			Priority:      d.impact * confidence * in.Objective.Score,
		})
	}

	applyCorrelationBoost(out)
	applyConflictPenalty(out, in)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > MaxHypotheses {
		out = out[:MaxHypotheses]
	}
	return out
}

// BuildFromFacts derives every required signal from raw facts and builds the
// ranked list. The heuristics-only path: no enhancement involved.
func BuildFromFacts(f *facts.InputFacts) []Hypothesis {
	sf := f.Sanitized()
	kw := signals.BuildKeywordSignals(sf.JD, sf.Resume)
	proof := signals.BuildProofSignals(sf.Resume, sf.Portfolio)
	career := signals.BuildCareerSignals(sf.Career, sf.JD)

	ctx := patterns.NewContext(&sf, &kw, &proof, &career)
	report := patterns.Detect(ctx, nil)

	return Build(&Input{
		Facts:     &sf,
		Keyword:   &kw,
		Proof:     &proof,
		Career:    &career,
		Objective: score.Compose(kw, career, proof),
		Flags:     report.Flags,
	})
}

// selfCheckMultiplier maps a 1-5 rating into [0.85,1.15]: self-assessment may
// mildly amplify or dampen objective confidence, never dominate it.
func selfCheckMultiplier(rating int) float64 {
	m := 0.85 + float64(rating-1)*0.075
	if m < 0.85 {
		return 0.85
	}
	if m > 1.15 {
		return 1.15
	}
	return m
}

// evidenceBoost converts category-matched fired flags into a bounded
// confidence addition.
func evidenceBoost(flags []patterns.Flag, categories []string) float64 {
	if len(categories) == 0 {
		return 0
	}
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	boost := 0.0
	for _, f := range flags {
		if !wanted[f.Category] {
			continue
		}
		switch f.Severity {
		case patterns.SeverityCritical, patterns.SeverityHigh:
			boost += 0.08
		case patterns.SeverityMid:
			boost += 0.04
		default:
			boost += 0.02
		}
	}

	if boost > 0.25 {
		boost = 0.25
	}
	return boost
}

// applyCorrelationBoost multiplies dependents of a strong driver by a bounded
// factor scaled by how far above the threshold the driver's normalized
// priority landed.
func applyCorrelationBoost(hs []Hypothesis) {
	maxPriority := 0.0
	index := make(map[string]int, len(hs))
	for i, h := range hs {
		index[h.ID] = i
		if h.Priority > maxPriority {
			maxPriority = h.Priority
		}
	}
	if maxPriority == 0 {
		return
	}

	for driver, deps := range correlationDrivers {
		di, ok := index[driver]
		if !ok {
			continue
		}
		normalized := hs[di].Priority / maxPriority
		if normalized < correlationThreshold {
			continue
		}

		factor := 1 + (normalized-correlationThreshold)/(1-correlationThreshold)*(correlationMaxFactor-1)
		if factor < correlationMinFactor {
			factor = correlationMinFactor
		}
		if factor > correlationMaxFactor {
			factor = correlationMaxFactor
		}

		for _, dep := range deps {
			if i, ok := index[dep]; ok {
				hs[i].Priority *= factor
			}
		}
	}
}

// applyConflictPenalty dampens every hypothesis equally when the
// self-assessment contradicts the objective signals: the input itself is
// internally inconsistent, so all conclusions deserve reduced confidence.
func applyConflictPenalty(hs []Hypothesis, in *Input) {
	conflicts := 0
	if in.Facts.SelfCheck.CoreFit >= 4 && in.Keyword.MatchScore <= 0.35 {
		conflicts++
	}
	if in.Facts.SelfCheck.RiskSignals <= 2 && in.Career.RiskScore >= 0.65 {
		conflicts++
	}

	var penalty float64
	switch {
	case conflicts >= 2:
		penalty = conflictDoublePenalty
	case conflicts == 1:
		penalty = conflictSinglePenalty
	default:
		return
	}

	for i := range hs {
		hs[i].Priority *= penalty
	}
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
