// Package score composes the single objective fitness estimate from the
// independent extractor signals.
package score

import "github.com/daseul-kim/rejectlens/internal/signals"

// Weighting constants. The keyword weight scales mildly with JD reliability;
// the remaining weight is redistributed across the other three components
// proportionally to their base fractions (0.2 + 0.25 + 0.2 = 0.65).
const (
	keywordBaseWeight  = 0.35
	careerFraction     = 0.2
	proofFraction      = 0.25
	experienceFraction = 0.2
	restFractionTotal  = 0.65

	// Applied on top of the keyword extractor's own 0.55 match-score
	// penalty. The two knockout penalties compound: the match score feeds
	// the composition as only one component, so a missing must-have must
	// also drag the composed result.
	knockoutObjectivePenalty = 0.72
)

// Objective is the composed 0-1 fitness estimate and its components.
type Objective struct {
	Score float64

	KeywordWeight       float64
	KeywordComponent    float64
	CareerComponent     float64
	ProofComponent      float64
	ExperienceComponent float64
	KnockoutApplied     bool
}

// Compose combines keyword match, inverted career risk, proof strength and
// experience-level fit into one clamped score.
func Compose(kw signals.KeywordSignals, career signals.CareerSignals, proof signals.ProofSignals) Objective {
	out := Objective{}

	out.KeywordWeight = keywordBaseWeight * (0.75 + 0.25*kw.Reliability)
	restScale := (1 - out.KeywordWeight) / restFractionTotal

	out.KeywordComponent = out.KeywordWeight * kw.MatchScore
	out.CareerComponent = careerFraction * restScale * (1 - career.RiskScore)
	out.ProofComponent = proofFraction * restScale * proof.ResumeSignalScore
	out.ExperienceComponent = experienceFraction * restScale * career.ExperienceLevelScore

	out.Score = clamp01(out.KeywordComponent + out.CareerComponent + out.ProofComponent + out.ExperienceComponent)

	if kw.HasKnockoutMissing {
		out.KnockoutApplied = true
		out.Score *= knockoutObjectivePenalty
	}

	return out
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
