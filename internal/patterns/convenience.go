package patterns

import (
	"github.com/daseul-kim/rejectlens/internal/facts"
	"github.com/daseul-kim/rejectlens/internal/signals"
	"go.uber.org/zap"
)

// DetectStructuralPatterns is the standalone entry point: it derives all
// extractor signals from the raw facts and runs the full detector bank.
// The orchestration layer builds the context itself to avoid recomputing
// signals it already has.
func DetectStructuralPatterns(f *facts.InputFacts, logger *zap.Logger) *Report {
	sf := f.Sanitized()
	kw := signals.BuildKeywordSignals(sf.JD, sf.Resume)
	proof := signals.BuildProofSignals(sf.Resume, sf.Portfolio)
	career := signals.BuildCareerSignals(sf.Career, sf.JD)

	return Detect(NewContext(&sf, &kw, &proof, &career), logger)
}
