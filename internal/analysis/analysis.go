// Package analysis orchestrates one full pipeline run: extractors, metrics,
// detector bank, risk profiles, objective score, hypotheses and the rendered
// report. Analyze is a pure function of its facts (given a fixed clock); the
// optional enhancement is advisory and never blocks or fails the run.
package analysis

import (
	"context"
	"time"

	"github.com/daseul-kim/rejectlens/internal/ai"
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/hypothesis"
	"github.com/daseul-kim/rejectlens/internal/patterns"
	"github.com/daseul-kim/rejectlens/internal/report"
	"github.com/daseul-kim/rejectlens/internal/risk"
	"github.com/daseul-kim/rejectlens/internal/score"
	"github.com/daseul-kim/rejectlens/internal/signals"
	"go.uber.org/zap"
)

// Deps carries the optional collaborators. Everything may be nil/zero; the
// pipeline then runs on its own heuristics with a no-op logger and the
// built-in skill dictionary.
type Deps struct {
	Logger     *zap.Logger
	Enhancer   ai.Enhancer
	Dictionary []signals.DictEntry
	Now        func() time.Time
}

// Result is the full outcome of one analysis run.
type Result struct {
	Facts       facts.InputFacts
	Keyword     signals.KeywordSignals
	Career      signals.CareerSignals
	Proof       signals.ProofSignals
	Metrics     *patterns.Metrics
	Flags       []patterns.Flag
	Summary     patterns.Summary
	Risks       []risk.Result
	Objective   score.Objective
	Hypotheses  []hypothesis.Hypothesis
	Enhanced    bool
	Report      string
	GeneratedAt time.Time
}

// Analyze runs the whole pipeline over the given facts. It always returns a
// structurally valid result; insufficient input degrades to low-confidence
// output, never to an error.
func Analyze(ctx context.Context, f *facts.InputFacts, deps Deps) *Result {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	sf := f.Sanitized()

	var enh *ai.Enhancement
	if deps.Enhancer != nil {
		enh = deps.Enhancer.Enhance(ctx, sf.JD, sf.Resume)
		if enh == nil {
			logger.Info("enhancement unavailable; proceeding with heuristics only")
		}
	}

	dict := deps.Dictionary
	if dict == nil {
		dict = signals.Dictionary()
	}

	kw := signals.BuildKeywordSignalsWithDictionary(sf.JD, sf.Resume, dict)
	proof := signals.BuildProofSignals(sf.Resume, sf.Portfolio)
	career := signals.BuildCareerSignals(sf.Career, sf.JD)

	pctx := patterns.NewContext(&sf, &kw, &proof, &career)
	patternReport := patterns.Detect(pctx, logger)

	logger.Debug("detector bank finished",
		zap.Int("detectors", patternReport.Summary.Detectors),
		zap.Int("fired", patternReport.Summary.Fired),
		zap.Int("failed", patternReport.Summary.Failed),
	)

	risks := risk.Evaluate(risk.NewInput(pctx, patternReport.Flags), logger)
	objective := score.Compose(kw, career, proof)

	hypotheses := hypothesis.Build(&hypothesis.Input{
		Facts:     &sf,
		Keyword:   &kw,
		Proof:     &proof,
		Career:    &career,
		Objective: objective,
		Flags:     patternReport.Flags,
		Enh:       enh,
	})

	generatedAt := now()

	res := &Result{
		Facts:       sf,
		Keyword:     kw,
		Career:      career,
		Proof:       proof,
		Metrics:     patternReport.Metrics,
		Flags:       patternReport.Flags,
		Summary:     patternReport.Summary,
		Risks:       risks,
		Objective:   objective,
		Hypotheses:  hypotheses,
		Enhanced:    enh != nil,
		GeneratedAt: generatedAt,
	}

	res.Report = report.Build(&report.Input{
		Facts:       &res.Facts,
		Keyword:     kw,
		Career:      career,
		Proof:       proof,
		Objective:   objective,
		Risks:       risks,
		Hypotheses:  hypotheses,
		GeneratedAt: generatedAt,
	})

	return res
}
