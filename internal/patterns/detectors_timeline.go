package patterns

import "fmt"

// Career-trajectory detectors. All of them require the optional career
// history; when it was not provided they return nil. Absence of data is never
// a risk signal.
var timelineDetectors = []Detector{
	{
		ID:       "timeline-long-gap",
		Category: CategoryTimeline,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if !m.HasCareerHistory || m.MaxGapMonths < 3 {
				return nil
			}
			score := interpolate(float64(m.MaxGapMonths), 3, 18)
			return &Flag{
				ID:       "timeline-long-gap",
				Title:    "Long gap between positions",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("longest gap: %d months", m.MaxGapMonths)},
				Detail:   map[string]any{"maxGapMonths": m.MaxGapMonths},
			}
		},
	},
	{
		ID:       "timeline-short-stints",
		Category: CategoryTimeline,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if !m.HasCareerHistory || m.ShortStints < 2 {
				return nil
			}
			score := interpolate(float64(m.ShortStints), 2, 5)
			return &Flag{
				ID:       "timeline-short-stints",
				Title:    "Several positions under ten months",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("%d positions of 9 months or less", m.ShortStints)},
				Detail:   map[string]any{"shortStints": m.ShortStints, "avgTenureMonths": m.AvgTenureMonths},
			}
		},
	},
	{
		ID:       "timeline-industry-hops",
		Category: CategoryTimeline,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if !m.HasCareerHistory || m.Industries < 3 {
				return nil
			}
			score := interpolate(float64(m.Industries), 3, 6)
			return &Flag{
				ID:       "timeline-industry-hops",
				Title:    "Frequent industry changes",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("%d distinct industries in history", m.Industries)},
				Detail:   map[string]any{"industries": m.Industries},
			}
		},
	},
}
