package hypothesis

import (
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/patterns"
)

// definition is one entry of the fixed hypothesis catalog. gate decides
// whether the candidate assembles for this input at all; rating picks which
// self-check rating modulates confidence (already inverted where a low
// self-rating should amplify); base derives the pre-adjustment confidence
// from the objective signals; categories name the flag categories that feed
// the evidence boost.
type definition struct {
	id      string
	title   string
	why     string
	counter string
	signals []string
	actions []string

	impact     float64
	categories []string
	gate       func(in *Input) bool
	rating     func(sc facts.SelfCheck) int
	base       func(in *Input) float64
}

func invert(rating int) int { return 6 - rating }

func always(*Input) bool { return true }

func neutralRating(facts.SelfCheck) int { return 3 }

// catalog is the fixed, ordered candidate list. The knockout entry is
// prepended at build time instead of living here.
var catalog = []definition{
	{
		id:      "fit-mismatch",
		title:   "The role fit did not come through",
		why:     "The JD's core requirements and the resume's vocabulary overlap too little for a screener to see the match.",
		counter: "If the keyword match score is healthy and a must-have is not missing, this hypothesis loses most of its weight.",
		signals: []string{"low keyword match score", "low JD-resume similarity", "missing JD keywords"},
		actions: []string{
			"rewrite the top third of the resume in the JD's own terms",
			"move the most JD-relevant experience above the fold",
		},
		impact:     0.9,
		categories: []string{patterns.CategoryFit},
		gate:       func(in *Input) bool { return in.Facts.IsResumeStage() },
		rating:     func(sc facts.SelfCheck) int { return invert(sc.CoreFit) },
		base: func(in *Input) float64 {
			return clampRange(0.9-in.Keyword.MatchScore, 0.25, 0.85)
		},
	},
	{
		id:      "proof-weak",
		title:   "Claims lacked verifiable proof",
		why:     "Achievements without numbers or context read as assertions, and assertions are discounted at screening.",
		counter: "A portfolio with several qualified numeric outcomes contradicts this hypothesis.",
		signals: []string{"few qualified numeric proofs", "impact verbs without figures"},
		actions: []string{
			"quantify the two strongest achievements, even approximately",
			"link to one artifact (repo, dashboard, doc) per major claim",
		},
		impact:     0.8,
		categories: []string{patterns.CategoryImpact},
		gate:       func(in *Input) bool { return in.Facts.IsResumeStage() },
		rating:     func(sc facts.SelfCheck) int { return invert(sc.ProofStrength) },
		base: func(in *Input) float64 {
			return clampRange(0.95-in.Proof.ResumeSignalScore, 0.25, 0.8)
		},
	},
	{
		id:      "role-clarity",
		title:   "It was unclear what role you were applying for",
		why:     "A resume that could fit five different roles convinces the screener of none of them.",
		counter: "A resume whose first screen names the target role and mirrors its responsibilities makes this unlikely.",
		signals: []string{"low specificity score", "vague responsibility phrasing"},
		actions: []string{
			"state the target role in the first line and cut content that serves other roles",
		},
		impact:     0.7,
		categories: []string{patterns.CategoryStructure, patterns.CategoryContext},
		gate:       func(in *Input) bool { return in.Facts.IsResumeStage() },
		rating:     func(sc facts.SelfCheck) int { return invert(sc.RoleClarity) },
		base:       func(*Input) float64 { return 0.5 },
	},
	{
		id:      "experience-level",
		title:   "Experience level missed the posting's band",
		why:     "Being under (or far over) the stated years band gets applications filtered before content is read.",
		counter: "When the JD has no years requirement, or the gap is non-negative and small, discard this.",
		signals: []string{"negative experience gap against the JD requirement"},
		actions: []string{
			"target postings whose band matches the actual total",
			"compensate with depth signals: scope, ownership, results",
		},
		impact:     0.7,
		categories: []string{patterns.CategoryFit},
		gate: func(in *Input) bool {
			return in.Career.ExperienceGap != nil && *in.Career.ExperienceGap < 0
		},
		rating: func(sc facts.SelfCheck) int { return invert(sc.CoreFit) },
		base:   func(*Input) float64 { return 0.65 },
	},
	{
		id:      "gap-risk",
		title:   "The career gap raised questions",
		why:     "An unexplained gap is a cheap reason to deprioritize an application when the pipeline is full.",
		counter: "A short gap with a stated reason, or strong recent output, neutralizes this.",
		signals: []string{"gap months in career facts", "timeline gap flags"},
		actions: []string{
			"add a one-line gap explanation with anything produced during it",
		},
		impact:     0.75,
		categories: []string{patterns.CategoryTimeline},
		gate:       func(in *Input) bool { return in.Facts.Career.GapMonths >= 3 },
		rating:     func(sc facts.SelfCheck) int { return sc.RiskSignals },
		base: func(in *Input) float64 {
			return clampRange(in.Career.RiskScore+0.15, 0.3, 0.85)
		},
	},
	{
		id:      "tenure-risk",
		title:   "Short tenures suggested flight risk",
		why:     "Several short stints make the reviewer price in another early exit before weighing anything else.",
		counter: "Structural causes (contracts, layoffs) stated on the resume weaken this hypothesis.",
		signals: []string{"short last tenure", "several job changes"},
		actions: []string{
			"frame each short stint around a completed deliverable",
		},
		impact:     0.7,
		categories: []string{patterns.CategoryTimeline},
		gate: func(in *Input) bool {
			c := in.Facts.Career
			return (c.LastTenureMonths > 0 && c.LastTenureMonths <= 12) || c.JobChanges >= 3
		},
		rating: func(sc facts.SelfCheck) int { return sc.RiskSignals },
		base: func(in *Input) float64 {
			return clampRange(in.Career.RiskScore+0.1, 0.3, 0.8)
		},
	},
	{
		id:      "story-inconsistency",
		title:   "The interview story did not hold together",
		why:     "Interviewers probe the same event from several angles; versions that drift read as embellishment.",
		counter: "Consistent written materials and notes with concrete details argue against this.",
		signals: []string{"self-rated story consistency", "hedging in interview notes"},
		actions: []string{
			"write the three core stories down in STAR form and rehearse the numbers",
		},
		impact:     0.75,
		categories: []string{patterns.CategoryLanguage},
		gate:       func(in *Input) bool { return in.Facts.IsInterviewStage() },
		rating:     func(sc facts.SelfCheck) int { return invert(sc.StoryConsistency) },
		base:       func(*Input) float64 { return 0.55 },
	},
	{
		id:      "interview-communication",
		title:   "Delivery undercut the content",
		why:     "Hedged, passive delivery makes correct answers sound uncertain, which is scored as a junior signal.",
		counter: "If the language metrics show no hedging or passivity, look elsewhere.",
		signals: []string{"hedging phrases", "weak assertions", "passive voice"},
		actions: []string{
			"practice answering in assertive, first-person sentences",
		},
		impact:     0.65,
		categories: []string{patterns.CategoryLanguage, patterns.CategoryOwnership},
		gate:       func(in *Input) bool { return in.Facts.IsInterviewStage() },
		rating:     func(sc facts.SelfCheck) int { return invert(sc.StoryConsistency) },
		base:       func(*Input) float64 { return 0.5 },
	},
	{
		id:      "competition",
		title:   "Someone else simply fit better",
		why:     "Most rejections need no flaw: a deep applicant pool means a marginally closer profile wins.",
		counter: "This is the fallback explanation; strong negative signals above should outrank it.",
		signals: []string{"no dominant negative signal"},
		actions: []string{
			"increase the number of well-targeted applications rather than over-fitting to this one",
		},
		impact:     0.5,
		categories: nil,
		gate:       always,
		rating:     neutralRating,
		base:       func(*Input) float64 { return 0.45 },
	},
}

// knockoutDefinition is prepended whenever the keyword extractor flagged a
// missing must-have.
var knockoutDefinition = definition{
	id:      "knockout-missing",
	title:   "A must-have requirement was missing",
	why:     "The JD names a requirement the resume never mentions; many pipelines cut on this alone.",
	counter: "If you do have the skill under another name, the rejection was a wording problem, not a fit problem.",
	signals: []string{"critical JD keyword absent from resume"},
	actions: []string{
		"add the missing must-have with concrete evidence, or map an equivalent to the JD's wording",
	},
	impact:     0.95,
	categories: []string{patterns.CategoryFit},
	gate:       func(in *Input) bool { return in.Keyword.HasKnockoutMissing },
	rating:     func(sc facts.SelfCheck) int { return invert(sc.CoreFit) },
	base:       func(*Input) float64 { return 0.85 },
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
