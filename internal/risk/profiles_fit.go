package risk

import "fmt"

// Role/skill fit risks. Each profile triggers primarily from its flag; the
// metrics fallback uses a stricter threshold so the two paths never
// double-count borderline cases.
var fitProfiles = []Profile{
	{
		ID:       "risk-semantic-mismatch",
		Group:    "role-skill-fit",
		Layer:    LayerRisk,
		Priority: 70,
		When: func(in *Input) bool {
			if in.HasFlag("fit-low-similarity") {
				return true
			}
			m := in.Ctx.Metrics
			return m.JDTokens > 0 && m.ResumeTokens > 0 && m.SemanticSimilarity < 0.05
		},
		Score: func(in *Input) float64 {
			return in.flagScore("fit-low-similarity", 0.7)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "The resume and the JD barely speak the same language",
				Why: []string{
					fmt.Sprintf("token similarity is %.3f", in.Ctx.Metrics.SemanticSimilarity),
					"screeners and ATS keyword scans both rely on shared vocabulary",
				},
				Fix: []string{
					"rewrite the experience section around the JD's own terms",
					"mirror the JD's naming for tools and responsibilities you actually have",
				},
				EvidenceKeys: []string{"semanticSimilarity", "jdTokens", "resumeTokens"},
			}
		},
	},
	{
		ID:       "risk-keyword-gap",
		Group:    "role-skill-fit",
		Layer:    LayerRisk,
		Priority: 65,
		When: func(in *Input) bool {
			if in.HasFlag("fit-keyword-gap") {
				return true
			}
			kw := in.Ctx.Keyword
			if len(kw.JDKeywords) == 0 {
				return false
			}
			return float64(len(kw.MissingKeywords))/float64(len(kw.JDKeywords)) >= 0.7
		},
		Score: func(in *Input) float64 {
			return in.flagScore("fit-keyword-gap", 0.6)
		},
		Explain: func(in *Input) Explanation {
			kw := in.Ctx.Keyword
			return Explanation{
				Title: "Most of the JD's skills are missing from the resume",
				Why: []string{
					fmt.Sprintf("%d of %d detected JD skills are not mentioned", len(kw.MissingKeywords), len(kw.JDKeywords)),
				},
				Fix: []string{
					"cover the missing skills you do have, with evidence",
					"drop the application, or address the gap in a cover note, when you have none of them",
				},
				EvidenceKeys: []string{"missingKeywords", "jdKeywords"},
			}
		},
	},
	{
		ID:       "risk-experience-shortfall",
		Group:    "role-skill-fit",
		Layer:    LayerRisk,
		Priority: 60,
		When: func(in *Input) bool {
			gap := in.Ctx.Metrics.ExperienceGap
			return gap != nil && *gap < 0
		},
		Score: func(in *Input) float64 {
			gap := *in.Ctx.Metrics.ExperienceGap
			return clamp01(0.4 + float64(-gap)*0.15)
		},
		Explain: func(in *Input) Explanation {
			gap := *in.Ctx.Metrics.ExperienceGap
			return Explanation{
				Title: "Below the stated years-of-experience bar",
				Why: []string{
					fmt.Sprintf("the JD asks for %d more year(s) than the stated total", -gap),
				},
				Fix: []string{
					"lead with depth signals (scope, ownership, results) that compensate for raw years",
					"target postings whose requirement matches the actual total",
				},
				EvidenceKeys: []string{"experienceGap", "experienceLevelScore"},
			}
		},
	},
}
