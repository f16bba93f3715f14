package risk

import "fmt"

// Ownership / leadership risks.
var ownershipProfiles = []Profile{
	{
		ID:       "risk-low-ownership",
		Group:    "ownership",
		Layer:    LayerRisk,
		Priority: 50,
		When: func(in *Input) bool {
			if in.HasFlag("own-weak-verb-ratio") {
				return true
			}
			m := in.Ctx.Metrics
			return m.HasOwnershipSample && m.OwnershipRatio < 0.2
		},
		Score: func(in *Input) float64 {
			return in.flagScore("own-weak-verb-ratio", 0.65)
		},
		Explain: func(in *Input) Explanation {
			m := in.Ctx.Metrics
			return Explanation{
				Title: "The language signals a supporting role, not an owner",
				Why: []string{
					fmt.Sprintf("directive verbs are %d against %d supportive verbs", m.OwnershipStrongCount, m.OwnershipWeakCount),
				},
				Fix: []string{
					"rewrite bullet points from '참여/지원' to what you personally decided and built",
					"attach the scope you owned (system, budget, metric) to each claim",
				},
				EvidenceKeys: []string{"ownershipRatio", "ownershipStrongCount", "ownershipWeakCount"},
			}
		},
	},
	{
		ID:       "risk-no-authority-signal",
		Group:    "ownership",
		Layer:    LayerRisk,
		Priority: 45,
		When: func(in *Input) bool {
			if in.HasFlag("own-no-decision") {
				return true
			}
			m := in.Ctx.Metrics
			return m.ResumeTokens >= 150 && m.DecisionMentions == 0 && m.InitiationMentions == 0
		},
		Score: func(in *Input) float64 {
			return in.flagScore("own-no-decision", 0.55)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "No decisions or initiatives are attributed to you",
				Why: []string{
					"a resume of this length with zero decision or initiation language reads as purely executional",
				},
				Fix: []string{
					"name one decision you made and its consequence",
					"name one thing you started without being asked",
				},
				EvidenceKeys: []string{"decisionMentions", "initiationMentions"},
			}
		},
	},
	{
		ID:       "risk-team-only-credit",
		Group:    "ownership",
		Layer:    LayerRisk,
		Priority: 40,
		When: func(in *Input) bool {
			if in.HasFlag("own-team-dominant") {
				return true
			}
			m := in.Ctx.Metrics
			return m.SoloMentions+m.TeamMentions >= 5 && m.SoloMentions == 0
		},
		Score: func(in *Input) float64 {
			return in.flagScore("own-team-dominant", 0.5)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Individual contribution is invisible behind the team",
				Why: []string{
					"every achievement is credited to the team; interviewers cannot size your share",
				},
				Fix: []string{
					"keep the team framing but add your specific part in each result",
				},
				EvidenceKeys: []string{"soloMentions", "teamMentions"},
			}
		},
	},
}
