package risk

import "fmt"

// Impact-evidence risks.
var impactProfiles = []Profile{
	{
		ID:       "risk-no-quantified-impact",
		Group:    "impact",
		Layer:    LayerRisk,
		Priority: 55,
		When: func(in *Input) bool {
			if in.HasFlag("impact-unquantified") {
				return true
			}
			m := in.Ctx.Metrics
			return m.ResumeTokens >= 100 && m.NumbersCount == 0
		},
		Score: func(in *Input) float64 {
			return in.flagScore("impact-unquantified", 0.7)
		},
		Explain: func(in *Input) Explanation {
			m := in.Ctx.Metrics
			why := []string{
				fmt.Sprintf("%d qualified numeric proofs were found", m.NumbersCount),
			}
			if m.NumbersCountRaw > m.NumbersCount {
				why = append(why, fmt.Sprintf("%d further numbers were present but lacked achievement context", m.NumbersCountRaw-m.NumbersCount))
			}
			return Explanation{
				Title: "Claims are not backed by numbers",
				Why:   why,
				Fix: []string{
					"attach a before/after figure to the strongest two or three achievements",
					"where exact numbers are confidential, use relative deltas (\"~30% 단축\")",
				},
				EvidenceKeys: []string{"numbersCount", "numbersCountRaw", "proofScore"},
			}
		},
	},
	{
		ID:       "risk-process-only-story",
		Group:    "impact",
		Layer:    LayerRisk,
		Priority: 40,
		When: func(in *Input) bool {
			if in.HasFlag("impact-process-only") {
				return true
			}
			m := in.Ctx.Metrics
			return m.ProcessVerbCount >= 6 && m.ImpactVerbCount == 0
		},
		Score: func(in *Input) float64 {
			return in.flagScore("impact-process-only", 0.55)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "The story is all process, no outcome",
				Why: []string{
					fmt.Sprintf("%d process verbs against %d outcome verbs", in.Ctx.Metrics.ProcessVerbCount, in.Ctx.Metrics.ImpactVerbCount),
				},
				Fix: []string{
					"finish each bullet with what changed because of the work",
				},
				EvidenceKeys: []string{"processVerbCount", "impactVerbCount"},
			}
		},
	},
}
