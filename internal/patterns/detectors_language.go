package patterns

// Language-register detectors. They read the combined resume, portfolio and
// interview-notes lexicon counts; without enough text they stay silent.
var languageDetectors = []Detector{
	{
		ID:       "lang-hedging",
		Category: CategoryLanguage,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.HedgingCount < 2 {
				return nil
			}
			score := interpolate(float64(m.HedgingCount), 2, 8)
			return &Flag{
				ID:       "lang-hedging",
				Title:    "Hedging language softens the claims",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("hedging"),
				Detail:   map[string]any{"hedgingCount": m.HedgingCount},
			}
		},
	},
	{
		ID:       "lang-weak-assertion",
		Category: CategoryLanguage,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.WeakAssertionCount < 2 {
				return nil
			}
			score := interpolate(float64(m.WeakAssertionCount), 2, 6)
			return &Flag{
				ID:       "lang-weak-assertion",
				Title:    "Claims framed as attempts rather than results",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("weak-assertion"),
				Detail:   map[string]any{"weakAssertions": m.WeakAssertionCount},
			}
		},
	},
	{
		ID:       "lang-passive-voice",
		Category: CategoryLanguage,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.PassiveCount < 3 {
				return nil
			}
			score := interpolate(float64(m.PassiveCount), 3, 10)
			return &Flag{
				ID:       "lang-passive-voice",
				Title:    "Passive phrasing hides the actor",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("passive"),
				Detail:   map[string]any{"passiveCount": m.PassiveCount},
			}
		},
	},
}
