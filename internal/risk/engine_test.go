package risk

import (
	"errors"
	"testing"

	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/patterns"
	"github.com/daseul-kim/rejectlens/internal/signals"
	"go.uber.org/zap"
)

func testInput(t *testing.T, f facts.InputFacts, flags []patterns.Flag) *Input {
	t.Helper()

	sf := f.Sanitized()
	kw := signals.BuildKeywordSignals(sf.JD, sf.Resume)
	proof := signals.BuildProofSignals(sf.Resume, sf.Portfolio)
	career := signals.BuildCareerSignals(sf.Career, sf.JD)

	ctx := patterns.NewContext(&sf, &kw, &proof, &career)
	return NewInput(ctx, flags)
}

func TestEvaluateInsufficientInputGate(t *testing.T) {
	in := testInput(t, facts.InputFacts{
		JD:     "경력 3년 이상 데이터 분석가",
		Resume: "짧은 요약",
	}, nil)

	results := Evaluate(in, zap.NewNop())

	gate := findResult(results, "gate-insufficient-input")
	if gate == nil {
		t.Fatalf("expected gate-insufficient-input for a near-empty resume, got %v", resultIDs(results))
	}
	if gate.Layer != LayerGate {
		t.Fatalf("expected gate layer, got %s", gate.Layer)
	}
	if gate.Score <= 0.5 || gate.Score > 1 {
		t.Fatalf("gate score out of expected band: %v", gate.Score)
	}
}

func TestEvaluateMustHaveGateFallback(t *testing.T) {
	// No flags supplied: the gate must still trigger straight from the
	// keyword extractor.
	in := testInput(t, facts.InputFacts{
		JD:     "React 필수, 프런트엔드 개발자",
		Resume: "백엔드 API를 설계하고 구축했습니다. 배포 자동화를 도입해 릴리즈 시간을 80% 단축했습니다. 쿠버네티스 기반 운영 경험이 있습니다.",
	}, nil)

	results := Evaluate(in, nil)

	gate := findResult(results, "gate-must-have-missing")
	if gate == nil {
		t.Fatalf("expected gate-must-have-missing via the extractor fallback, got %v", resultIDs(results))
	}
	if gate.Score != 0.9 {
		t.Fatalf("fallback path uses the conservative 0.9 score, got %v", gate.Score)
	}
	if len(gate.Explain.Why) == 0 || len(gate.Explain.Fix) == 0 {
		t.Fatalf("a triggered gate must explain itself: %+v", gate.Explain)
	}
}

func TestEvaluatePrimaryFlagScoreWins(t *testing.T) {
	flags := []patterns.Flag{{
		ID:       "fit-low-similarity",
		Category: patterns.CategoryFit,
		Severity: patterns.SeverityHigh,
		Score:    0.64,
	}}

	in := testInput(t, facts.InputFacts{
		JD:     "경력 3년 이상 데이터 분석가, SQL 필수",
		Resume: "SQL 기반 분석을 수행하고 전환율을 15% 개선했습니다. 대시보드를 구축해 리포트 시간을 절감했습니다.",
	}, flags)

	results := Evaluate(in, nil)

	res := findResult(results, "risk-semantic-mismatch")
	if res == nil {
		t.Fatalf("expected risk-semantic-mismatch when its flag fired, got %v", resultIDs(results))
	}
	if res.Score != 0.64 {
		t.Fatalf("the fired flag's score must win, got %v", res.Score)
	}
}

func TestEvaluateFallbackStricterThanFlag(t *testing.T) {
	// Similarity between 0.05 and 0.12 triggers the detector path only, so
	// without flags the profile must stay silent.
	in := testInput(t, facts.InputFacts{
		JD:     "데이터 분석 플랫폼을 함께 만들 분석가를 찾습니다 모델링 경험 우대",
		Resume: "데이터 기반 의사결정을 지원했습니다 분석 리포트를 작성했습니다 실험을 설계했습니다 지표를 관리했습니다",
	}, nil)

	sim := in.Ctx.Metrics.SemanticSimilarity
	if sim < 0.05 || sim >= 0.12 {
		t.Skipf("fixture drifted out of the target band: similarity %v", sim)
	}

	results := Evaluate(in, nil)
	if findResult(results, "risk-semantic-mismatch") != nil {
		t.Fatalf("fallback must be stricter than the detector threshold")
	}
}

func TestEvaluateOrdering(t *testing.T) {
	in := testInput(t, facts.InputFacts{
		JD:     "React 필수, 경력 5년 이상",
		Resume: "짧은 요약",
		Career: facts.CareerFacts{TotalYears: 1, GapMonths: 14, JobChanges: 5},
	}, nil)

	results := Evaluate(in, nil)
	if len(results) < 2 {
		t.Fatalf("expected several triggered profiles, got %v", resultIDs(results))
	}

	for i := 1; i < len(results); i++ {
		a, b := results[i-1], results[i]
		if a.Priority < b.Priority {
			t.Fatalf("results not sorted by priority: %s(%d) before %s(%d)", a.ID, a.Priority, b.ID, b.Priority)
		}
		if a.Priority == b.Priority && a.Score < b.Score {
			t.Fatalf("priority ties must sort by score: %s before %s", a.ID, b.ID)
		}
	}

	if results[0].Layer != LayerGate {
		t.Fatalf("gates must outrank ordinary risks, got %s first", results[0].ID)
	}
}

func TestRunIsolatedRecoversPanic(t *testing.T) {
	p := Profile{
		ID:    "boom",
		When:  func(*Input) bool { panic(errors.New("broken profile")) },
		Score: func(*Input) float64 { return 1 },
	}

	res, err := runIsolated(p, testInput(t, facts.InputFacts{}, nil))
	if err == nil {
		t.Fatalf("expected the panic to surface as an error")
	}
	if res != nil {
		t.Fatalf("a panicking profile must not produce a result")
	}
}

func TestEvaluateScoreClamped(t *testing.T) {
	in := testInput(t, facts.InputFacts{
		JD:     "경력 10년 이상",
		Resume: "짧은 요약",
		Career: facts.CareerFacts{TotalYears: 0},
	}, nil)

	for _, res := range Evaluate(in, nil) {
		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("profile %s score out of [0,1]: %v", res.ID, res.Score)
		}
	}
}

func findResult(results []Result, id string) *Result {
	for i := range results {
		if results[i].ID == id {
			return &results[i]
		}
	}
	return nil
}

func resultIDs(results []Result) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}
