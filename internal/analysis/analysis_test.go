package analysis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/daseul-kim/rejectlens/internal/ai"
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/signals"
	"go.uber.org/zap"
)

type stubEnhancer struct {
	enh    *ai.Enhancement
	called bool
}

func (s *stubEnhancer) Enhance(context.Context, string, string) *ai.Enhancement {
	s.called = true
	return s.enh
}

var scenarioFacts = facts.InputFacts{
	Company: "어느회사",
	Role:    "데이터 분석가",
	Stage:   facts.StageResume,
	JD:      "3년 이상 경력의 데이터 분석가를 찾습니다. SQL 필수, React 우대.",
	Resume:  "SQL을 활용해 대시보드를 구축하고 전환율을 15% 개선했습니다. 데이터 파이프라인을 설계하고 운영했습니다.",
	Career:  facts.CareerFacts{TotalYears: 4, GapMonths: 1, JobChanges: 1, LastTenureMonths: 30},
}

func TestAnalyzeKnockoutScenario(t *testing.T) {
	f := scenarioFacts
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

	res := Analyze(context.Background(), &f, Deps{
		Logger: zap.NewNop(),
		Now:    func() time.Time { return now },
	})

	if !res.Keyword.HasKnockoutMissing {
		t.Fatalf("react should be a missing must-have: %+v", res.Keyword)
	}
	if !res.Objective.KnockoutApplied {
		t.Fatalf("the objective score must carry the knockout penalty")
	}
	if len(res.Hypotheses) == 0 || res.Hypotheses[0].ID != "knockout-missing" {
		t.Fatalf("expected knockout-missing ranked first, got %+v", res.Hypotheses)
	}
	if res.Enhanced {
		t.Fatalf("no enhancer was configured")
	}
	if res.GeneratedAt != now {
		t.Fatalf("the injected clock must drive GeneratedAt, got %v", res.GeneratedAt)
	}

	for _, want := range []string{
		"REJECTION ANALYSIS — 어느회사 / 데이터 분석가",
		"Date: 2025-11-03",
		"MISSING MUST-HAVE: react",
		"== Ranked hypotheses ==",
	} {
		if !strings.Contains(res.Report, want) {
			t.Fatalf("report missing %q:\n%s", want, res.Report)
		}
	}
}

func TestAnalyzeWithEnhancer(t *testing.T) {
	f := scenarioFacts
	stub := &stubEnhancer{enh: &ai.Enhancement{
		ConfidenceDelta: map[string]float64{"fit-mismatch": 0.1},
	}}

	res := Analyze(context.Background(), &f, Deps{Enhancer: stub})

	if !stub.called {
		t.Fatalf("the enhancer should be consulted")
	}
	if !res.Enhanced {
		t.Fatalf("a non-nil enhancement must mark the result as enhanced")
	}
}

func TestAnalyzeEnhancerFailureDegrades(t *testing.T) {
	f := scenarioFacts
	stub := &stubEnhancer{enh: nil}

	res := Analyze(context.Background(), &f, Deps{Enhancer: stub})

	if res.Enhanced {
		t.Fatalf("a nil enhancement must not mark the result as enhanced")
	}
	if len(res.Hypotheses) == 0 {
		t.Fatalf("the heuristics pipeline must still produce a ranking")
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Analyze(context.Background(), &facts.InputFacts{}, Deps{})

	if res.Keyword.MatchScore != 0.35 {
		t.Fatalf("empty input yields the low-confidence default, got %v", res.Keyword.MatchScore)
	}
	if res.Report == "" {
		t.Fatalf("even empty input must render a report")
	}

	found := false
	for _, r := range res.Risks {
		if r.ID == "gate-insufficient-input" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the insufficient-input gate, got %+v", res.Risks)
	}
}

func TestAnalyzeCustomDictionary(t *testing.T) {
	f := facts.InputFacts{
		Stage:  facts.StageResume,
		JD:     "Spark 경험 필수인 데이터 엔지니어를 찾습니다.",
		Resume: "스파크 스트리밍 파이프라인을 구축하고 지연 시간을 30% 단축했습니다.",
	}

	dict := signals.BuildDictionary([]signals.DictEntry{
		{Keyword: "spark", Aliases: []string{"스파크"}, Critical: true},
	})

	res := Analyze(context.Background(), &f, Deps{Dictionary: dict})

	matched := false
	for _, kw := range res.Keyword.MatchedKeywords {
		if kw == "spark" {
			matched = true
		}
	}
	if !matched {
		t.Fatalf("the configured dictionary entry should match, got %+v", res.Keyword)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	f := facts.InputFacts{
		Company: "  패딩  ",
		Career:  facts.CareerFacts{TotalYears: -3},
	}

	Analyze(context.Background(), &f, Deps{})

	if f.Company != "  패딩  " || f.Career.TotalYears != -3 {
		t.Fatalf("Analyze must work on a sanitized copy, input changed: %+v", f)
	}
}
