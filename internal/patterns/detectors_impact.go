package patterns

import "fmt"

// Impact / achievement detectors.
var impactDetectors = []Detector{
	{
		ID:       "impact-unquantified",
		Category: CategoryImpact,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens < 50 || m.NumbersCount >= 3 {
				return nil
			}
			score := 0.45
			severity := SeverityMid
			if m.NumbersCount == 0 {
				score = 0.75
				severity = SeverityHigh
			}
			return &Flag{
				ID:       "impact-unquantified",
				Title:    "Achievements are not backed by numbers",
				Severity: severity,
				Score:    score,
				Evidence: []string{fmt.Sprintf("%d qualified numeric proofs (%d raw numbers)", m.NumbersCount, m.NumbersCountRaw)},
				Detail:   map[string]any{"qualified": m.NumbersCount, "raw": m.NumbersCountRaw},
			}
		},
	},
	{
		ID:       "impact-verb-scarce",
		Category: CategoryImpact,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens < 50 || m.ImpactVerbCount > 0 {
				return nil
			}
			return &Flag{
				ID:       "impact-verb-scarce",
				Title:    "No outcome language (improved/reduced/achieved)",
				Severity: SeverityHigh,
				Score:    0.6,
				Evidence: []string{"no impact verbs found in resume or portfolio"},
			}
		},
	},
	{
		ID:       "impact-process-only",
		Category: CategoryImpact,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ProcessVerbCount < 3 || m.ImpactVerbCount > 0 {
				return nil
			}
			score := interpolate(float64(m.ProcessVerbCount), 3, 8)
			return &Flag{
				ID:       "impact-process-only",
				Title:    "Process descriptions without outcomes",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("process"),
				Detail:   map[string]any{"processVerbs": m.ProcessVerbCount},
			}
		},
	},
}
