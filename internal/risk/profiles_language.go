package risk

import "fmt"

// Language-register risks.
var languageProfiles = []Profile{
	{
		ID:       "risk-low-confidence-language",
		Group:    "language",
		Layer:    LayerRisk,
		Priority: 30,
		When: func(in *Input) bool {
			if in.HasFlag("lang-hedging") || in.HasFlag("lang-weak-assertion") {
				return true
			}
			m := in.Ctx.Metrics
			return m.HedgingCount+m.WeakAssertionCount >= 6
		},
		Score: func(in *Input) float64 {
			score := in.flagScore("lang-hedging", 0)
			if s := in.flagScore("lang-weak-assertion", 0); s > score {
				score = s
			}
			if score == 0 {
				score = 0.5
			}
			return score
		},
		Explain: func(in *Input) Explanation {
			m := in.Ctx.Metrics
			return Explanation{
				Title: "Hedged, low-confidence phrasing",
				Why: []string{
					fmt.Sprintf("%d hedging and %d weak-assertion phrases were found", m.HedgingCount, m.WeakAssertionCount),
					"qualifiers transfer doubt from the writer to the reader",
				},
				Fix: []string{
					"state results plainly; reserve qualifiers for genuinely uncertain claims",
				},
				EvidenceKeys: []string{"hedgingCount", "weakAssertionCount"},
			}
		},
	},
	{
		ID:       "risk-passive-voice",
		Group:    "language",
		Layer:    LayerRisk,
		Priority: 25,
		When: func(in *Input) bool {
			if in.HasFlag("lang-passive-voice") {
				return true
			}
			return in.Ctx.Metrics.PassiveCount >= 6
		},
		Score: func(in *Input) float64 {
			return in.flagScore("lang-passive-voice", 0.45)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Passive constructions hide the actor",
				Why: []string{
					fmt.Sprintf("%d passive phrasings were found", in.Ctx.Metrics.PassiveCount),
				},
				Fix: []string{
					"rewrite '진행되었습니다' style sentences with yourself as the subject",
				},
				EvidenceKeys: []string{"passiveCount"},
			}
		},
	},
}
