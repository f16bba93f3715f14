package patterns

import "fmt"

// Ownership / responsibility detectors.
var ownershipDetectors = []Detector{
	{
		ID:       "own-weak-verb-ratio",
		Category: CategoryOwnership,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if !m.HasOwnershipSample || m.OwnershipRatio >= 0.4 {
				return nil
			}
			score := interpolate(m.OwnershipRatio, 0.4, 0)
			return &Flag{
				ID:       "own-weak-verb-ratio",
				Title:    "Supportive verbs dominate over directive verbs",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("ownership-weak"),
				Detail: map[string]any{
					"strong": m.OwnershipStrongCount,
					"weak":   m.OwnershipWeakCount,
					"ratio":  m.OwnershipRatio,
				},
			}
		},
	},
	{
		ID:       "own-no-decision",
		Category: CategoryOwnership,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens < 80 || m.DecisionMentions > 0 {
				return nil
			}
			return &Flag{
				ID:       "own-no-decision",
				Title:    "No decision-authority language",
				Severity: SeverityMid,
				Score:    0.5,
				Evidence: []string{"no decision/ownership phrasing found in a resume of this length"},
			}
		},
	},
	{
		ID:       "own-no-initiation",
		Category: CategoryOwnership,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens < 80 || m.InitiationMentions > 0 {
				return nil
			}
			return &Flag{
				ID:       "own-no-initiation",
				Title:    "Nothing was self-initiated",
				Severity: SeverityMid,
				Score:    0.45,
				Evidence: []string{"no initiation phrasing (proposed/kicked off) found"},
			}
		},
	},
	{
		ID:       "own-team-dominant",
		Category: CategoryOwnership,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			total := m.SoloMentions + m.TeamMentions
			if total < 3 {
				return nil
			}
			teamShare := float64(m.TeamMentions) / float64(total)
			if teamShare < 0.8 {
				return nil
			}
			score := interpolate(teamShare, 0.8, 1)
			return &Flag{
				ID:       "own-team-dominant",
				Title:    "Work is described almost entirely as team output",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("team mentions %d vs solo mentions %d", m.TeamMentions, m.SoloMentions)},
				Detail:   map[string]any{"teamShare": teamShare},
			}
		},
	},
}
