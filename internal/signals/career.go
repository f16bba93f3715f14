package signals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/textkit"
)

// ExperiencePolicy classifies what kind of candidate the JD is written for.
type ExperiencePolicy string

const (
	PolicyNewGrad     ExperiencePolicy = "newgrad"
	PolicyAny         ExperiencePolicy = "any"
	PolicyExperienced ExperiencePolicy = "experienced"
	PolicyUnknown     ExperiencePolicy = "unknown"
)

// YearsRequirement is a parsed years-of-experience requirement. Max is nil
// for open-ended requirements ("5년 이상").
type YearsRequirement struct {
	Min int
	Max *int
}

// CareerSignals combines the JD-side experience policy with the career risk
// derived from the caller's structured career facts.
type CareerSignals struct {
	Policy               ExperiencePolicy
	RequiredYears        *YearsRequirement
	RiskScore            float64
	ExperienceLevelScore float64
	ExperienceGap        *int
}

// BuildCareerSignals derives all career-related signals from the structured
// career facts and the job description.
func BuildCareerSignals(career facts.CareerFacts, jd string) CareerSignals {
	jd = textkit.Normalize(jd)

	out := CareerSignals{
		Policy:        ParseExperiencePolicy(jd),
		RequiredYears: ParseRequiredYears(jd),
		RiskScore:     CareerRiskScore(career),
	}

	out.ExperienceLevelScore, out.ExperienceGap = experienceLevel(career, out.Policy, out.RequiredYears)
	return out
}

var (
	newgradTerms     = []string{"신입", "인턴", "new grad", "entry level", "entry-level"}
	anyPolicyTerms   = []string{"경력무관", "경력 무관", "experience not required", "무관"}
	experiencedTerms = []string{"경력", "년 이상", "years of experience", "experienced"}
)

// ParseExperiencePolicy classifies the JD by keyword presence. The first
// matching rule wins: newgrad terms beat the "any" terms, which beat generic
// experience language.
func ParseExperiencePolicy(jd string) ExperiencePolicy {
	lower := strings.ToLower(jd)
	switch {
	case containsAnyOf(lower, newgradTerms):
		return PolicyNewGrad
	case containsAnyOf(lower, anyPolicyTerms):
		return PolicyAny
	case containsAnyOf(lower, experiencedTerms):
		return PolicyExperienced
	default:
		return PolicyUnknown
	}
}

var (
	yearsRangeRe   = regexp.MustCompile(`(\d+)\s*[~∼-]\s*(\d+)\s*년`)
	yearsMinRe     = regexp.MustCompile(`(\d+)\s*년\s*(?:이상|\+)`)
	yearsEnglishRe = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)
	yearsZeroRe    = regexp.MustCompile(`(?:^|[^\d])0\s*년`)
)

// ParseRequiredYears extracts a years requirement from the JD, or nil when no
// pattern matches. A literal "0년" means an explicit zero requirement.
func ParseRequiredYears(jd string) *YearsRequirement {
	if m := yearsRangeRe.FindStringSubmatch(jd); m != nil {
		minY, _ := strconv.Atoi(m[1])
		maxY, _ := strconv.Atoi(m[2])
		if maxY >= minY {
			return &YearsRequirement{Min: minY, Max: &maxY}
		}
	}
	if m := yearsMinRe.FindStringSubmatch(jd); m != nil {
		minY, _ := strconv.Atoi(m[1])
		return &YearsRequirement{Min: minY}
	}
	if m := yearsEnglishRe.FindStringSubmatch(jd); m != nil {
		minY, _ := strconv.Atoi(m[1])
		return &YearsRequirement{Min: minY}
	}
	if yearsZeroRe.MatchString(jd) {
		zero := 0
		return &YearsRequirement{Min: 0, Max: &zero}
	}
	return nil
}

// CareerRiskScore sums independent additive risk bonuses and clamps to [0,1].
// Every threshold that holds contributes; a 14 month gap fires all three gap
// tiers at once. A zero last tenure means "no tenure signal" and adds nothing.
func CareerRiskScore(c facts.CareerFacts) float64 {
	risk := 0.0

	if c.GapMonths >= 12 {
		risk += 0.4
	}
	if c.GapMonths >= 6 {
		risk += 0.32
	}
	if c.GapMonths >= 3 {
		risk += 0.2
	}

	if c.LastTenureMonths > 0 {
		if c.LastTenureMonths <= 6 {
			risk += 0.3
		}
		if c.LastTenureMonths <= 12 {
			risk += 0.18
		}
	}

	if c.JobChanges >= 5 {
		risk += 0.25
	}
	if c.JobChanges >= 3 {
		risk += 0.15
	}

	return clamp01(risk)
}

// experienceLevel scores how well the candidate's total experience fits the
// JD's requirement. Experience is deliberately under-weighted for newgrad and
// experience-agnostic postings; excess experience earns a diminishing bonus
// capped at 12 years over the minimum.
func experienceLevel(c facts.CareerFacts, policy ExperiencePolicy, req *YearsRequirement) (float64, *int) {
	if policy == PolicyNewGrad || policy == PolicyAny {
		return 0.7, nil
	}
	if req == nil {
		return 0.6, nil
	}

	gap := c.TotalYears - req.Min
	if gap < 0 {
		return clamp01(0.55 + float64(gap)*0.1), &gap
	}

	excess := gap
	if excess > 12 {
		excess = 12
	}
	return clamp01(0.62 - float64(excess)*0.02), &gap
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
