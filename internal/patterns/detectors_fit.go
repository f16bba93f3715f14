package patterns

import "fmt"

// Role/skill fit detectors.
var fitDetectors = []Detector{
	{
		ID:       "fit-must-have-missing",
		Category: CategoryFit,
		Run: func(ctx *Context) *Flag {
			missing := ctx.Metrics.MissingMustHave
			if len(missing) == 0 {
				return nil
			}
			score := 0.6 + 0.2*float64(min(len(missing)-1, 2))
			severity := SeverityHigh
			if len(missing) >= 2 {
				severity = SeverityCritical
			}
			return &Flag{
				ID:       "fit-must-have-missing",
				Title:    "Must-have requirement absent from resume",
				Severity: severity,
				Score:    score,
				Evidence: clampEvidence(missing),
				Detail:   map[string]any{"missingMustHave": missing},
			}
		},
	},
	{
		ID:       "fit-low-similarity",
		Category: CategoryFit,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.JDTokens == 0 || m.ResumeTokens == 0 {
				return nil
			}
			if m.SemanticSimilarity >= 0.12 {
				return nil
			}
			score := interpolate(m.SemanticSimilarity, 0.12, 0.02)
			return &Flag{
				ID:       "fit-low-similarity",
				Title:    "Resume vocabulary barely overlaps the JD",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("token similarity %.3f", m.SemanticSimilarity)},
				Detail:   map[string]any{"semanticSimilarity": m.SemanticSimilarity},
			}
		},
	},
	{
		ID:       "fit-keyword-gap",
		Category: CategoryFit,
		Run: func(ctx *Context) *Flag {
			kw := ctx.Keyword
			if len(kw.JDKeywords) == 0 {
				return nil
			}
			ratio := float64(len(kw.MissingKeywords)) / float64(len(kw.JDKeywords))
			if ratio < 0.5 {
				return nil
			}
			score := interpolate(ratio, 0.5, 1)
			return &Flag{
				ID:       "fit-keyword-gap",
				Title:    "Most JD keywords are missing from the resume",
				Severity: severityFor(score),
				Score:    score,
				Evidence: clampEvidence(kw.MissingKeywords),
				Detail:   map[string]any{"missingKeywords": kw.MissingKeywords, "jdKeywords": kw.JDKeywords},
			}
		},
	},
}
