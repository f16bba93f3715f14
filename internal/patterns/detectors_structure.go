package patterns

import "fmt"

// Resume structure / clarity detectors.
var structureDetectors = []Detector{
	{
		ID:       "struct-thin-content",
		Category: CategoryStructure,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.ContentDensity >= 0.35 {
				return nil
			}
			score := interpolate(m.ContentDensity, 0.35, 0.05)
			return &Flag{
				ID:       "struct-thin-content",
				Title:    "Thin content density",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("content density %.2f over %d lines", m.ContentDensity, m.ResumeLines)},
				Detail:   map[string]any{"density": m.ContentDensity, "lines": m.ResumeLines},
			}
		},
	},
	{
		ID:       "struct-buzzword-heavy",
		Category: CategoryStructure,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.BuzzwordRatio < 0.15 {
				return nil
			}
			score := interpolate(m.BuzzwordRatio, 0.15, 0.6)
			return &Flag{
				ID:       "struct-buzzword-heavy",
				Title:    "Buzzwords outweigh substance",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("buzzword"),
				Detail:   map[string]any{"buzzwordRatio": m.BuzzwordRatio},
			}
		},
	},
	{
		ID:       "struct-vague-duties",
		Category: CategoryStructure,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.VagueRatio < 0.08 {
				return nil
			}
			score := interpolate(m.VagueRatio, 0.08, 0.4)
			return &Flag{
				ID:       "struct-vague-duties",
				Title:    "Responsibilities described only in vague terms",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("vague"),
				Detail:   map[string]any{"vagueRatio": m.VagueRatio},
			}
		},
	},
	{
		ID:       "struct-generic-intro",
		Category: CategoryStructure,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if !m.GenericIntro {
				return nil
			}
			return &Flag{
				ID:       "struct-generic-intro",
				Title:    "Boilerplate self-introduction",
				Severity: SeverityMid,
				Score:    0.4,
				Evidence: []string{"self-introduction opens with generic filler"},
			}
		},
	},
}
