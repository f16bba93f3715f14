package risk

import "fmt"

// Hard gates: near-disqualifying conditions that outrank every ordinary risk.
var gateProfiles = []Profile{
	{
		ID:       "gate-must-have-missing",
		Group:    "role-skill-fit",
		Layer:    LayerGate,
		Priority: 100,
		When: func(in *Input) bool {
			if in.HasFlag("fit-must-have-missing") {
				return true
			}
			// fallback straight from the keyword extractor
			return in.Ctx.Keyword.HasKnockoutMissing
		},
		Score: func(in *Input) float64 {
			return in.flagScore("fit-must-have-missing", 0.9)
		},
		Explain: func(in *Input) Explanation {
			missing := in.Ctx.Keyword.MissingCritical
			return Explanation{
				Title: "A must-have requirement is not visible in the resume",
				Why: []string{
					fmt.Sprintf("the JD marks %v as required and the resume mentions none of their aliases", missing),
					"screeners typically filter on must-haves before reading anything else",
				},
				Fix: []string{
					"add concrete experience with the missing requirement, or an equivalent with an explicit mapping",
					"if the experience exists but under a different name, use the JD's own wording",
				},
				EvidenceKeys: []string{"missingMustHave", "requiredCoverage"},
			}
		},
	},
	{
		ID:       "gate-insufficient-input",
		Group:    "resume-structure",
		Layer:    LayerGate,
		Priority: 95,
		When: func(in *Input) bool {
			return in.Ctx.Metrics.ResumeTokens < 30
		},
		Score: func(in *Input) float64 {
			return 1 - float64(in.Ctx.Metrics.ResumeTokens)/30*0.5
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Too little resume text to screen",
				Why: []string{
					fmt.Sprintf("only %d tokens of resume text were provided", in.Ctx.Metrics.ResumeTokens),
					"with this little signal any conclusion is low-confidence",
				},
				Fix: []string{
					"paste the full resume body, not a summary",
				},
				EvidenceKeys: []string{"resumeTokens"},
				Notes:        []string{"all other findings should be read as provisional"},
			}
		},
	},
}
