package hypothesis

import (
	"math/rand"
	"testing"

	"github.com/daseul-kim/rejectlens/internal/ai"
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/patterns"
	"github.com/daseul-kim/rejectlens/internal/score"
	"github.com/daseul-kim/rejectlens/internal/signals"
)

func buildInput(f facts.InputFacts) *Input {
	sf := f.Sanitized()
	kw := signals.BuildKeywordSignals(sf.JD, sf.Resume)
	proof := signals.BuildProofSignals(sf.Resume, sf.Portfolio)
	career := signals.BuildCareerSignals(sf.Career, sf.JD)

	ctx := patterns.NewContext(&sf, &kw, &proof, &career)
	report := patterns.Detect(ctx, nil)

	return &Input{
		Facts:     &sf,
		Keyword:   &kw,
		Proof:     &proof,
		Career:    &career,
		Objective: score.Compose(kw, career, proof),
		Flags:     report.Flags,
	}
}

var knockoutFacts = facts.InputFacts{
	Company: "어느회사",
	Role:    "데이터 분석가",
	Stage:   facts.StageResume,
	JD:      "3년 이상 경력의 데이터 분석가를 찾습니다. SQL 필수, React 우대.",
	Resume:  "SQL을 활용해 대시보드를 구축하고 전환율을 15% 개선했습니다. 데이터 파이프라인을 설계하고 운영했습니다.",
	Career:  facts.CareerFacts{TotalYears: 4, GapMonths: 1, JobChanges: 1, LastTenureMonths: 30},
}

func TestBuildKnockoutRanksFirst(t *testing.T) {
	hs := Build(buildInput(knockoutFacts))

	if len(hs) == 0 {
		t.Fatalf("expected hypotheses for the knockout scenario")
	}
	if hs[0].ID != "knockout-missing" {
		t.Fatalf("a missing must-have should dominate the ranking, got %s first", hs[0].ID)
	}
}

func TestBuildCapsAtSix(t *testing.T) {
	f := knockoutFacts
	f.Career = facts.CareerFacts{TotalYears: 1, GapMonths: 6, JobChanges: 4, LastTenureMonths: 8}

	hs := Build(buildInput(f))

	if len(hs) != MaxHypotheses {
		t.Fatalf("eight candidates gate in; output must cap at %d, got %d", MaxHypotheses, len(hs))
	}
}

func TestBuildIdempotent(t *testing.T) {
	first := Build(buildInput(knockoutFacts))
	second := Build(buildInput(knockoutFacts))

	if len(first) != len(second) {
		t.Fatalf("length differs between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Priority != second[i].Priority {
			t.Fatalf("run divergence at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBuildInterviewStageGating(t *testing.T) {
	f := knockoutFacts
	f.Stage = facts.StageFinalInterview

	hs := Build(buildInput(f))

	if findHypothesis(hs, "fit-mismatch") != nil {
		t.Fatalf("resume-stage hypotheses must not gate in at an interview stage")
	}
	if findHypothesis(hs, "story-inconsistency") == nil {
		t.Fatalf("interview hypotheses should gate in, got %v", hypothesisIDs(hs))
	}
}

func TestBuildEnhancementDeltaShiftsConfidence(t *testing.T) {
	in := buildInput(knockoutFacts)
	base := Build(in)
	baseH := findHypothesis(base, "knockout-missing")
	if baseH == nil {
		t.Fatalf("missing knockout hypothesis: %v", hypothesisIDs(base))
	}

	// An oversized delta must clamp to the +-0.15 band before applying.
	in.Enh = &ai.Enhancement{ConfidenceDelta: map[string]float64{"knockout-missing": -0.9}}
	lowered := Build(in)
	lowH := findHypothesis(lowered, "knockout-missing")
	if lowH == nil {
		t.Fatalf("missing knockout hypothesis after enhancement")
	}

	diff := baseH.Confidence - lowH.Confidence
	if diff <= 0 || diff > 0.15+1e-9 {
		t.Fatalf("delta must lower confidence by at most 0.15, got %v", diff)
	}
}

func TestSelfCheckMultiplierBounds(t *testing.T) {
	if got := selfCheckMultiplier(1); got != 0.85 {
		t.Fatalf("rating 1 maps to 0.85, got %v", got)
	}
	if got := selfCheckMultiplier(5); got != 1.15 {
		t.Fatalf("rating 5 maps to 1.15, got %v", got)
	}
	if got := selfCheckMultiplier(3); got != 1.0 {
		t.Fatalf("the neutral rating maps to 1.0, got %v", got)
	}
	if got := selfCheckMultiplier(-10); got != 0.85 {
		t.Fatalf("multiplier must clamp below, got %v", got)
	}
	if got := selfCheckMultiplier(99); got != 1.15 {
		t.Fatalf("multiplier must clamp above, got %v", got)
	}
}

func TestEvidenceBoostCaps(t *testing.T) {
	flags := make([]patterns.Flag, 0, 10)
	for i := 0; i < 10; i++ {
		flags = append(flags, patterns.Flag{
			ID:       "f",
			Category: patterns.CategoryFit,
			Severity: patterns.SeverityCritical,
		})
	}

	if got := evidenceBoost(flags, []string{patterns.CategoryFit}); got != 0.25 {
		t.Fatalf("boost must cap at 0.25, got %v", got)
	}
	if got := evidenceBoost(flags, nil); got != 0 {
		t.Fatalf("no categories means no boost, got %v", got)
	}
	if got := evidenceBoost(flags, []string{patterns.CategoryTimeline}); got != 0 {
		t.Fatalf("unrelated categories must not boost, got %v", got)
	}
}

func TestApplyCorrelationBoost(t *testing.T) {
	hs := []Hypothesis{
		{ID: "gap-risk", Priority: 0.5},
		{ID: "tenure-risk", Priority: 0.2},
		{ID: "competition", Priority: 0.1},
	}

	applyCorrelationBoost(hs)

	if hs[1].Priority <= 0.2 {
		t.Fatalf("a dominant driver must boost its dependent, got %v", hs[1].Priority)
	}
	if hs[1].Priority > 0.2*correlationMaxFactor+1e-9 {
		t.Fatalf("boost factor must cap at %v, got %v", correlationMaxFactor, hs[1].Priority/0.2)
	}
	if hs[2].Priority != 0.1 {
		t.Fatalf("uncorrelated hypotheses must not move, got %v", hs[2].Priority)
	}
}

func TestApplyCorrelationBoostBelowThreshold(t *testing.T) {
	hs := []Hypothesis{
		{ID: "gap-risk", Priority: 0.2},
		{ID: "tenure-risk", Priority: 0.3},
		{ID: "fit-mismatch", Priority: 1.0},
		{ID: "experience-level", Priority: 0.4},
	}

	applyCorrelationBoost(hs)

	// gap-risk normalizes to 0.2, under the 0.55 threshold
	if hs[1].Priority != 0.3 {
		t.Fatalf("a weak driver must not boost anything, got %v", hs[1].Priority)
	}
	// fit-mismatch is the maximum, so its dependent is boosted
	if hs[3].Priority <= 0.4 {
		t.Fatalf("the dominant driver should boost experience-level, got %v", hs[3].Priority)
	}
}

func TestApplyConflictPenalty(t *testing.T) {
	mk := func() []Hypothesis {
		return []Hypothesis{{ID: "a", Priority: 1.0}, {ID: "b", Priority: 0.5}}
	}

	single := mk()
	applyConflictPenalty(single, &Input{
		Facts:   &facts.InputFacts{SelfCheck: facts.SelfCheck{CoreFit: 5, RiskSignals: 4}},
		Keyword: &signals.KeywordSignals{MatchScore: 0.2},
		Career:  &signals.CareerSignals{RiskScore: 0.1},
	})
	if single[0].Priority != conflictSinglePenalty {
		t.Fatalf("one contradiction scales by %v, got %v", conflictSinglePenalty, single[0].Priority)
	}

	double := mk()
	applyConflictPenalty(double, &Input{
		Facts:   &facts.InputFacts{SelfCheck: facts.SelfCheck{CoreFit: 5, RiskSignals: 1}},
		Keyword: &signals.KeywordSignals{MatchScore: 0.2},
		Career:  &signals.CareerSignals{RiskScore: 0.8},
	})
	if double[0].Priority != conflictDoublePenalty {
		t.Fatalf("two contradictions scale by %v, got %v", conflictDoublePenalty, double[0].Priority)
	}

	clean := mk()
	applyConflictPenalty(clean, &Input{
		Facts:   &facts.InputFacts{SelfCheck: facts.SelfCheck{CoreFit: 3, RiskSignals: 3}},
		Keyword: &signals.KeywordSignals{MatchScore: 0.6},
		Career:  &signals.CareerSignals{RiskScore: 0.2},
	})
	if clean[0].Priority != 1.0 {
		t.Fatalf("consistent input must not be penalized, got %v", clean[0].Priority)
	}
}

func TestBuildFromFactsRandomizedBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	jds := []string{
		"",
		"성실한 분을 찾습니다",
		"3년 이상 경력, SQL 필수, React 우대",
		"신입 데이터 분석가 모집",
		"경력 5~7년 백엔드 개발자, Java 필수, Spring 우대",
	}
	resumes := []string{
		"",
		"짧은 요약",
		"SQL을 활용해 전환율을 15% 개선했습니다. 대시보드를 구축했습니다.",
		"다양한 업무를 수행했습니다. 성실하고 책임감 있게 임했습니다.",
	}
	stages := []string{facts.StageResume, facts.StageFirstInterview, facts.StageOffer, "unknown"}

	for i := 0; i < 1000; i++ {
		f := facts.InputFacts{
			JD:     jds[rng.Intn(len(jds))],
			Resume: resumes[rng.Intn(len(resumes))],
			Stage:  stages[rng.Intn(len(stages))],
			Career: facts.CareerFacts{
				TotalYears:       rng.Intn(20),
				GapMonths:        rng.Intn(30),
				JobChanges:       rng.Intn(9),
				LastTenureMonths: rng.Intn(48),
			},
			SelfCheck: facts.SelfCheck{
				CoreFit:          rng.Intn(7) - 1,
				ProofStrength:    rng.Intn(7) - 1,
				RoleClarity:      rng.Intn(7) - 1,
				StoryConsistency: rng.Intn(7) - 1,
				RiskSignals:      rng.Intn(7) - 1,
			},
		}

		hs := BuildFromFacts(&f)

		if len(hs) > MaxHypotheses {
			t.Fatalf("iteration %d: %d hypotheses exceed the cap", i, len(hs))
		}
		for _, h := range hs {
			if h.Confidence < 0 || h.Confidence > 1 {
				t.Fatalf("iteration %d: %s confidence out of [0,1]: %v", i, h.ID, h.Confidence)
			}
			if h.Priority < 0 {
				t.Fatalf("iteration %d: %s priority negative: %v", i, h.ID, h.Priority)
			}
			if h.Title == "" || h.Counter == "" {
				t.Fatalf("iteration %d: %s must carry a title and counter-evidence", i, h.ID)
			}
		}
		for j := 1; j < len(hs); j++ {
			if hs[j-1].Priority < hs[j].Priority {
				t.Fatalf("iteration %d: ranking not descending at %d", i, j)
			}
		}
	}
}

func findHypothesis(hs []Hypothesis, id string) *Hypothesis {
	for i := range hs {
		if hs[i].ID == id {
			return &hs[i]
		}
	}
	return nil
}

func hypothesisIDs(hs []Hypothesis) []string {
	ids := make([]string, 0, len(hs))
	for _, h := range hs {
		ids = append(ids, h.ID)
	}
	return ids
}
