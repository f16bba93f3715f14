package patterns

import (
	"strconv"
	"strings"

	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/signals"
	"github.com/daseul-kim/rejectlens/internal/textkit"
)

// Metrics is the single canonical schema every detector and risk profile
// reads from. It is computed once per analysis by BuildMetrics and never
// mutated afterwards. Ratio-valued fields are in [0,1]; counts are
// non-negative. Has* booleans encode "this input was actually provided", so
// consumers can skip instead of penalizing missing data.
type Metrics struct {
	JDTokens     int
	ResumeTokens int
	ResumeLines  int

	SemanticSimilarity float64
	RequiredCoverage   float64
	MissingMustHave    []string
	MissingKeywords    []string
	MatchedKeywords    []string

	NumbersCount    int
	NumbersCountRaw int
	ProofScore      float64

	ImpactVerbCount  int
	ProcessVerbCount int

	HasOwnershipSample   bool
	OwnershipStrongCount int
	OwnershipWeakCount   int
	OwnershipRatio       float64
	DecisionMentions     int
	InitiationMentions   int
	SoloMentions         int
	TeamMentions         int

	HedgingCount       int
	PassiveCount       int
	WeakAssertionCount int

	BuzzwordRatio    float64
	VagueRatio       float64
	GenericIntro     bool
	ContentDensity   float64
	VendorSignals    int
	SpecificityScore float64

	HasCareerHistory bool
	AvgTenureMonths  float64
	MaxGapMonths     int
	ShortStints      int
	Industries       int

	CareerRisk           float64
	ExperienceLevelScore float64
	ExperienceGap        *int
}

// evidence snippets collected while computing metrics, keyed by metric group.
type evidenceBank map[string][]string

// Context is the immutable input every detector and risk profile receives.
type Context struct {
	Facts   *facts.InputFacts
	Keyword *signals.KeywordSignals
	Proof   *signals.ProofSignals
	Career  *signals.CareerSignals
	Metrics *Metrics

	evidence evidenceBank
}

// Evidence returns collected snippets for a metric group, nil when none.
func (c *Context) Evidence(key string) []string {
	if c.evidence == nil {
		return nil
	}
	return c.evidence[key]
}

// NewContext aggregates all extractor outputs into the canonical detector
// input. The facts must already be sanitized.
func NewContext(f *facts.InputFacts, kw *signals.KeywordSignals, proof *signals.ProofSignals, career *signals.CareerSignals) *Context {
	ctx := &Context{
		Facts:    f,
		Keyword:  kw,
		Proof:    proof,
		Career:   career,
		evidence: evidenceBank{},
	}
	ctx.Metrics = buildMetrics(ctx)
	return ctx
}

func buildMetrics(ctx *Context) *Metrics {
	f := ctx.Facts
	m := &Metrics{}

	jd := textkit.Normalize(f.JD)
	resume := textkit.Normalize(f.Resume)
	work := strings.TrimSpace(resume + "\n" + textkit.Normalize(f.Portfolio) + "\n" + textkit.Normalize(f.InterviewNotes))
	lowered := strings.ToLower(work)

	jdTokens := textkit.Tokenize(jd)
	resumeTokens := textkit.Tokenize(resume)
	m.JDTokens = len(jdTokens)
	m.ResumeTokens = len(resumeTokens)
	if resume != "" {
		m.ResumeLines = len(strings.Split(resume, "\n"))
	}

	if len(jdTokens) > 0 && len(resumeTokens) > 0 {
		m.SemanticSimilarity = textkit.Similarity(jdTokens, resumeTokens)
	}

	kw := ctx.Keyword
	m.MatchedKeywords = kw.MatchedKeywords
	m.MissingKeywords = kw.MissingKeywords
	m.MissingMustHave = kw.MissingCritical
	if len(kw.JDCritical) > 0 {
		covered := len(kw.JDCritical) - len(kw.MissingCritical)
		m.RequiredCoverage = float64(covered) / float64(len(kw.JDCritical))
	} else if len(kw.JDKeywords) > 0 {
		m.RequiredCoverage = float64(len(kw.MatchedKeywords)) / float64(len(kw.JDKeywords))
	}

	m.NumbersCount = ctx.Proof.ProofCount
	m.NumbersCountRaw = ctx.Proof.ProofCountRaw
	m.ProofScore = ctx.Proof.ResumeSignalScore

	m.ImpactVerbCount, ctx.evidence["impact"] = countPhrases(lowered, impactVerbTerms)
	m.ProcessVerbCount, ctx.evidence["process"] = countPhrases(lowered, processVerbTerms)

	m.OwnershipStrongCount, ctx.evidence["ownership-strong"] = countPhrases(lowered, strongVerbs)
	m.OwnershipWeakCount, ctx.evidence["ownership-weak"] = countPhrases(lowered, weakVerbs)
	if total := m.OwnershipStrongCount + m.OwnershipWeakCount; total > 0 {
		m.HasOwnershipSample = true
		m.OwnershipRatio = float64(m.OwnershipStrongCount) / float64(total)
	}
	m.DecisionMentions, ctx.evidence["decision"] = countPhrases(lowered, decisionTerms)
	m.InitiationMentions, ctx.evidence["initiation"] = countPhrases(lowered, initiationTerms)
	m.SoloMentions, _ = countPhrases(lowered, soloTerms)
	m.TeamMentions, _ = countPhrases(lowered, teamTerms)

	m.HedgingCount, ctx.evidence["hedging"] = countPhrases(lowered, hedgingTerms)
	m.PassiveCount, ctx.evidence["passive"] = countPhrases(lowered, passiveTerms)
	m.WeakAssertionCount, ctx.evidence["weak-assertion"] = countPhrases(lowered, weakAssertionTerms)

	buzz, buzzEv := countPhrases(lowered, buzzwordTerms)
	ctx.evidence["buzzword"] = buzzEv
	vague, vagueEv := countPhrases(lowered, vagueDutyTerms)
	ctx.evidence["vague"] = vagueEv
	if m.ResumeTokens > 0 {
		m.BuzzwordRatio = clamp01(float64(buzz) / float64(m.ResumeTokens) * 10)
		m.VagueRatio = clamp01(float64(vague) / float64(m.ResumeTokens) * 10)
	}

	introCount, _ := countPhrases(lowered, genericIntroTerms)
	m.GenericIntro = introCount > 0

	m.VendorSignals, ctx.evidence["vendor"] = countPhrases(lowered, vendorTerms)

	m.ContentDensity = contentDensity(resume)
	m.SpecificityScore = specificity(f, resume)

	m.HasCareerHistory = f.HasCareerHistory()
	if m.HasCareerHistory {
		m.AvgTenureMonths, m.MaxGapMonths, m.ShortStints, m.Industries = timelineMetrics(f.CareerHistory)
	}

	m.CareerRisk = ctx.Career.RiskScore
	m.ExperienceLevelScore = ctx.Career.ExperienceLevelScore
	m.ExperienceGap = ctx.Career.ExperienceGap

	return m
}

// contentDensity estimates how much substance the resume carries per line,
// normalized so ~60 meaningful runes per line saturate at 1.0.
func contentDensity(resume string) float64 {
	if resume == "" {
		return 0
	}
	lines := strings.Split(resume, "\n")
	nonEmpty := 0
	runes := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		nonEmpty++
		runes += len([]rune(line))
	}
	if nonEmpty == 0 {
		return 0
	}
	return clamp01(float64(runes) / float64(nonEmpty) / 60)
}

// specificity rewards resumes that name the target company or role and use
// concrete nouns instead of generic filler.
func specificity(f *facts.InputFacts, resume string) float64 {
	if resume == "" {
		return 0
	}
	lower := strings.ToLower(resume)
	score := 0.3

	if f.Company != "" && strings.Contains(lower, strings.ToLower(f.Company)) {
		score += 0.3
	}
	if f.Role != "" && strings.Contains(lower, strings.ToLower(f.Role)) {
		score += 0.2
	}

	digits := 0
	for _, r := range lower {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits >= 5 {
		score += 0.2
	}

	return clamp01(score)
}

// timelineMetrics derives tenure statistics from the optional career history.
func timelineMetrics(history []facts.HistoryEntry) (avgTenure float64, maxGap, shortStints, industries int) {
	months := 0
	counted := 0
	seen := map[string]struct{}{}

	type dated struct{ start, end int }
	var spans []dated

	for _, h := range history {
		d := h.DurationMonths()
		if d <= 0 {
			continue
		}
		counted++
		months += d
		if d <= 9 {
			shortStints++
		}
		industry := strings.ToLower(strings.TrimSpace(h.Industry))
		if industry != "" {
			seen[industry] = struct{}{}
		}
		if s, ok := parseMonths(h.Start); ok {
			if e, okE := parseMonths(h.End); okE && e >= s {
				spans = append(spans, dated{s, e})
			}
		}
	}

	if counted > 0 {
		avgTenure = float64(months) / float64(counted)
	}
	industries = len(seen)

	for i := 1; i < len(spans); i++ {
		gap := spans[i].start - spans[i-1].end
		if gap > maxGap {
			maxGap = gap
		}
	}
	return avgTenure, maxGap, shortStints, industries
}

func parseMonths(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return year*12 + month - 1, true
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
