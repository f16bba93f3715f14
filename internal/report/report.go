// Package report renders the analysis result into a human-readable text
// document. Pure function of its input.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/hypothesis"
	"github.com/daseul-kim/rejectlens/internal/risk"
	"github.com/daseul-kim/rejectlens/internal/score"
	"github.com/daseul-kim/rejectlens/internal/signals"
)

// Input is everything the renderer needs. GeneratedAt is injected so the
// document stays a deterministic function of its input.
type Input struct {
	Facts       *facts.InputFacts
	Keyword     signals.KeywordSignals
	Career      signals.CareerSignals
	Proof       signals.ProofSignals
	Objective   score.Objective
	Risks       []risk.Result
	Hypotheses  []hypothesis.Hypothesis
	GeneratedAt time.Time
}

const disclaimer = `Everything below is a ranked, falsifiable hypothesis derived from
pattern heuristics over the provided texts. It is not a verdict, and it can
be wrong. Each hypothesis names the observation that would refute it.`

var closingChecklist = []string{
	"Pick the top hypothesis and apply its first action before the next application.",
	"Check each hypothesis against its counter-evidence before accepting it.",
	"Re-run the analysis after editing the resume to confirm the signals moved.",
	"Treat a low-confidence result as missing input, not as absence of problems.",
}

// Build renders the full report.
func Build(in *Input) string {
	var b strings.Builder

	writeHeader(&b, in)
	writeObjectiveBlock(&b, in)
	writeKeywordBlock(&b, in)
	writeRiskBlock(&b, in)

	b.WriteString("== Disclaimer ==\n")
	b.WriteString(disclaimer)
	b.WriteString("\n\n")

	writeHypotheses(&b, in)
	writeChecklist(&b)

	return b.String()
}

func writeHeader(b *strings.Builder, in *Input) {
	company := orDash(in.Facts.Company)
	role := orDash(in.Facts.Role)
	stage := orDash(in.Facts.Stage)

	fmt.Fprintf(b, "REJECTION ANALYSIS — %s / %s\n", company, role)
	fmt.Fprintf(b, "Stage: %s    Date: %s\n\n", stage, in.GeneratedAt.Format("2006-01-02"))
}

func writeObjectiveBlock(b *strings.Builder, in *Input) {
	o := in.Objective
	b.WriteString("== Objective metrics ==\n")
	fmt.Fprintf(b, "Objective score:        %.2f", o.Score)
	if o.KnockoutApplied {
		b.WriteString("  (knockout penalty applied)")
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "Keyword match:          %.2f (weight %.2f, JD reliability %.2f)\n",
		in.Keyword.MatchScore, o.KeywordWeight, in.Keyword.Reliability)
	fmt.Fprintf(b, "Career risk:            %.2f\n", in.Career.RiskScore)
	fmt.Fprintf(b, "Proof strength:         %.2f (%d qualified / %d raw numbers)\n",
		in.Proof.ResumeSignalScore, in.Proof.ProofCount, in.Proof.ProofCountRaw)
	fmt.Fprintf(b, "Experience-level fit:   %.2f", in.Career.ExperienceLevelScore)
	if gap := in.Career.ExperienceGap; gap != nil {
		fmt.Fprintf(b, " (gap %+d years)", *gap)
	}
	b.WriteString("\n\n")
}

func writeKeywordBlock(b *strings.Builder, in *Input) {
	kw := in.Keyword
	b.WriteString("== Keyword detail ==\n")
	fmt.Fprintf(b, "JD keywords:     %s\n", joinOrDash(kw.JDKeywords))
	fmt.Fprintf(b, "Matched:         %s\n", joinOrDash(kw.MatchedKeywords))
	fmt.Fprintf(b, "Missing:         %s\n", joinOrDash(kw.MissingKeywords))
	fmt.Fprintf(b, "Must-have (JD):  %s\n", joinOrDash(kw.JDCritical))
	if kw.HasKnockoutMissing {
		fmt.Fprintf(b, "MISSING MUST-HAVE: %s\n", strings.Join(kw.MissingCritical, ", "))
	}
	if kw.Note != "" {
		fmt.Fprintf(b, "Note: %s\n", kw.Note)
	}
	b.WriteString("\n")
}

func writeRiskBlock(b *strings.Builder, in *Input) {
	if len(in.Risks) == 0 {
		return
	}
	b.WriteString("== Triggered risks ==\n")
	for _, r := range in.Risks {
		marker := "-"
		if r.Layer == risk.LayerGate {
			marker = "!"
		}
		fmt.Fprintf(b, "%s [%s] %s (score %.2f)\n", marker, r.Group, r.Explain.Title, r.Score)
		for _, why := range r.Explain.Why {
			fmt.Fprintf(b, "    why: %s\n", why)
		}
		for _, fix := range r.Explain.Fix {
			fmt.Fprintf(b, "    fix: %s\n", fix)
		}
	}
	b.WriteString("\n")
}

func writeHypotheses(b *strings.Builder, in *Input) {
	b.WriteString("== Ranked hypotheses ==\n")
	if len(in.Hypotheses) == 0 {
		b.WriteString("Insufficient signal for a specific hypothesis; see the checklist below.\n\n")
		return
	}
	for i, h := range in.Hypotheses {
		fmt.Fprintf(b, "%d. %s  (priority %.3f, confidence %.2f)\n", i+1, h.Title, h.Priority, h.Confidence)
		fmt.Fprintf(b, "   Why: %s\n", h.Why)
		if len(h.Signals) > 0 {
			fmt.Fprintf(b, "   Signals: %s\n", strings.Join(h.Signals, "; "))
		}
		for _, a := range h.Actions {
			fmt.Fprintf(b, "   Action: %s\n", a)
		}
		fmt.Fprintf(b, "   Counter-evidence: %s\n", h.Counter)
	}
	b.WriteString("\n")
}

func writeChecklist(b *strings.Builder) {
	b.WriteString("== Before the next application ==\n")
	for _, item := range closingChecklist {
		fmt.Fprintf(b, "[ ] %s\n", item)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
