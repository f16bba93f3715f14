package risk

import "fmt"

// Career-trajectory risks. These only ever trigger when the optional career
// history or the structured career facts actually carry a signal.
var timelineProfiles = []Profile{
	{
		ID:       "risk-timeline-gap",
		Group:    "timeline",
		Layer:    LayerRisk,
		Priority: 60,
		When: func(in *Input) bool {
			if in.HasFlag("timeline-long-gap") {
				return true
			}
			m := in.Ctx.Metrics
			return m.HasCareerHistory && m.MaxGapMonths >= 12
		},
		Score: func(in *Input) float64 {
			return in.flagScore("timeline-long-gap", 0.65)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Unexplained gap in the work timeline",
				Why: []string{
					fmt.Sprintf("the longest gap between positions is %d months", in.Ctx.Metrics.MaxGapMonths),
					"gaps without a stated reason read as risk to screeners",
				},
				Fix: []string{
					"add a one-line explanation for the gap (study, care work, sabbatical project)",
					"surface anything produced during the gap as evidence",
				},
				EvidenceKeys: []string{"maxGapMonths", "careerRisk"},
			}
		},
	},
	{
		ID:       "risk-job-hopping",
		Group:    "timeline",
		Layer:    LayerRisk,
		Priority: 55,
		When: func(in *Input) bool {
			if in.HasFlag("timeline-short-stints") {
				return true
			}
			m := in.Ctx.Metrics
			return m.HasCareerHistory && m.ShortStints >= 4
		},
		Score: func(in *Input) float64 {
			return in.flagScore("timeline-short-stints", 0.6)
		},
		Explain: func(in *Input) Explanation {
			m := in.Ctx.Metrics
			return Explanation{
				Title: "Pattern of short stints",
				Why: []string{
					fmt.Sprintf("%d positions lasted 9 months or less (average tenure %.0f months)", m.ShortStints, m.AvgTenureMonths),
					"hiring managers price in ramp-up time and fear another early exit",
				},
				Fix: []string{
					"frame short stints around completed deliverables, not duration",
					"explain structural causes (contract roles, layoffs) explicitly",
				},
				EvidenceKeys: []string{"shortStints", "avgTenureMonths"},
			}
		},
	},
	{
		ID:       "risk-industry-drift",
		Group:    "timeline",
		Layer:    LayerRisk,
		Priority: 45,
		When: func(in *Input) bool {
			if in.HasFlag("timeline-industry-hops") {
				return true
			}
			m := in.Ctx.Metrics
			return m.HasCareerHistory && m.Industries >= 5
		},
		Score: func(in *Input) float64 {
			return in.flagScore("timeline-industry-hops", 0.5)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "No visible industry through-line",
				Why: []string{
					fmt.Sprintf("the history spans %d distinct industries", in.Ctx.Metrics.Industries),
				},
				Fix: []string{
					"name the transferable thread (domain, skill, customer type) connecting the moves",
				},
				EvidenceKeys: []string{"industries"},
			}
		},
	},
}
