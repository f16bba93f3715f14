package report

import (
	"strings"
	"testing"
	"time"

	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/hypothesis"
	"github.com/daseul-kim/rejectlens/internal/risk"
	"github.com/daseul-kim/rejectlens/internal/score"
	"github.com/daseul-kim/rejectlens/internal/signals"
)

func testInput() *Input {
	gap := -2
	return &Input{
		Facts: &facts.InputFacts{
			Company: "어느회사",
			Role:    "데이터 분석가",
			Stage:   facts.StageResume,
		},
		Keyword: signals.KeywordSignals{
			MatchScore:         0.31,
			Reliability:        0.72,
			JDKeywords:         []string{"sql", "react"},
			MatchedKeywords:    []string{"sql"},
			MissingKeywords:    []string{"react"},
			JDCritical:         []string{"sql", "react"},
			MissingCritical:    []string{"react"},
			HasKnockoutMissing: true,
		},
		Career: signals.CareerSignals{
			RiskScore:            0.2,
			ExperienceLevelScore: 0.35,
			ExperienceGap:        &gap,
		},
		Proof: signals.ProofSignals{
			ProofCount:        2,
			ProofCountRaw:     3,
			ResumeSignalScore: 0.5,
		},
		Objective: score.Objective{Score: 0.29, KeywordWeight: 0.33, KnockoutApplied: true},
		Risks: []risk.Result{
			{
				ID:    "gate-must-have-missing",
				Group: "role-skill-fit",
				Layer: risk.LayerGate,
				Score: 0.9,
				Explain: risk.Explanation{
					Title: "A must-have requirement is not visible in the resume",
					Why:   []string{"the JD marks react as required"},
					Fix:   []string{"add the missing requirement"},
				},
			},
		},
		Hypotheses: []hypothesis.Hypothesis{
			{
				ID:         "knockout-missing",
				Title:      "A must-have requirement was missing",
				Why:        "The JD names a requirement the resume never mentions.",
				Signals:    []string{"critical JD keyword absent"},
				Actions:    []string{"add the missing must-have"},
				Counter:    "If you have the skill under another name, this was a wording problem.",
				Confidence: 0.91,
				Priority:   0.25,
			},
		},
		GeneratedAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildSections(t *testing.T) {
	doc := Build(testInput())

	for _, want := range []string{
		"REJECTION ANALYSIS — 어느회사 / 데이터 분석가",
		"Stage: 서류",
		"Date: 2025-11-03",
		"== Objective metrics ==",
		"(knockout penalty applied)",
		"== Keyword detail ==",
		"MISSING MUST-HAVE: react",
		"== Triggered risks ==",
		"! [role-skill-fit]",
		"== Disclaimer ==",
		"ranked, falsifiable hypothesis",
		"== Ranked hypotheses ==",
		"1. A must-have requirement was missing",
		"Counter-evidence:",
		"== Before the next application ==",
		"[ ] ",
		"(gap -2 years)",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("report missing %q:\n%s", want, doc)
		}
	}
}

func TestBuildEmptyHypotheses(t *testing.T) {
	in := testInput()
	in.Hypotheses = nil

	doc := Build(in)

	if !strings.Contains(doc, "Insufficient signal for a specific hypothesis") {
		t.Fatalf("empty ranking needs the fallback line:\n%s", doc)
	}
}

func TestBuildBlankHeaderFields(t *testing.T) {
	in := testInput()
	in.Facts = &facts.InputFacts{}
	in.Risks = nil

	doc := Build(in)

	if !strings.Contains(doc, "REJECTION ANALYSIS — - / -") {
		t.Fatalf("blank company/role should render as dashes:\n%s", doc)
	}
	if strings.Contains(doc, "== Triggered risks ==") {
		t.Fatalf("no risks means no risk section:\n%s", doc)
	}
}
