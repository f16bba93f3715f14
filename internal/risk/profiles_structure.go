package risk

// Resume structure / clarity risks.
var structureProfiles = []Profile{
	{
		ID:       "risk-thin-resume",
		Group:    "resume-structure",
		Layer:    LayerRisk,
		Priority: 40,
		When: func(in *Input) bool {
			if in.HasFlag("struct-thin-content") {
				return true
			}
			m := in.Ctx.Metrics
			return m.ResumeTokens > 0 && m.ContentDensity < 0.15
		},
		Score: func(in *Input) float64 {
			return in.flagScore("struct-thin-content", 0.6)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Not enough substance per line",
				Why: []string{
					"short, fragmentary lines force the reader to guess the actual work",
				},
				Fix: []string{
					"expand each position into situation, action and result",
				},
				EvidenceKeys: []string{"contentDensity", "resumeLines"},
			}
		},
	},
	{
		ID:       "risk-buzzword-heavy",
		Group:    "resume-structure",
		Layer:    LayerRisk,
		Priority: 30,
		When: func(in *Input) bool {
			if in.HasFlag("struct-buzzword-heavy") {
				return true
			}
			return in.Ctx.Metrics.BuzzwordRatio >= 0.3
		},
		Score: func(in *Input) float64 {
			return in.flagScore("struct-buzzword-heavy", 0.5)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Personality buzzwords are doing the work evidence should",
				Why: []string{
					"traits claimed without evidence are read as filler by screeners",
				},
				Fix: []string{
					"replace each trait with an incident that demonstrates it",
				},
				EvidenceKeys: []string{"buzzwordRatio"},
			}
		},
	},
	{
		ID:       "risk-vague-duties",
		Group:    "resume-structure",
		Layer:    LayerRisk,
		Priority: 35,
		When: func(in *Input) bool {
			if in.HasFlag("struct-vague-duties") {
				return true
			}
			return in.Ctx.Metrics.VagueRatio >= 0.2
		},
		Score: func(in *Input) float64 {
			return in.flagScore("struct-vague-duties", 0.55)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Responsibilities stay abstract",
				Why: []string{
					"phrases like '다양한 업무' hide what was actually done",
				},
				Fix: []string{
					"name the three most representative tasks instead of umbrella phrases",
				},
				EvidenceKeys: []string{"vagueRatio"},
			}
		},
	},
}
