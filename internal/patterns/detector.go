package patterns

import (
	"fmt"

	"go.uber.org/zap"
)

// Detector is one structural pattern check: a pure function of the context
// that returns a Flag when the pattern fires and nil when it does not or when
// its required input is absent. Detectors never share state and their
// execution order never affects an individual flag's content.
type Detector struct {
	ID       string
	Category string
	Run      func(*Context) *Flag
}

// Detector categories.
const (
	CategoryTimeline  = "career-trajectory"
	CategoryFit       = "role-skill-fit"
	CategoryOwnership = "ownership"
	CategoryImpact    = "impact"
	CategoryContext   = "company-context"
	CategoryStructure = "resume-structure"
	CategoryLanguage  = "language-register"
)

// Summary describes one detector bank run.
type Summary struct {
	Detectors  int
	Fired      int
	Failed     int
	BySeverity map[Severity]int
}

// Report is the aggregated output of the detector bank.
type Report struct {
	Flags   []Flag
	Metrics *Metrics
	Summary Summary
}

// Detect runs every registered detector against the context, isolating
// failures so a single broken detector never aborts the batch. The logger may
// be nil.
func Detect(ctx *Context, logger *zap.Logger) *Report {
	report := &Report{
		Metrics: ctx.Metrics,
		Summary: Summary{
			Detectors:  len(registry),
			BySeverity: map[Severity]int{},
		},
	}

	for _, d := range registry {
		flag, err := runIsolated(d, ctx)
		if err != nil {
			report.Summary.Failed++
			if logger != nil {
				logger.Warn("detector failed; skipping",
					zap.String("detector", d.ID),
					zap.Error(err),
				)
			}
			continue
		}
		if flag == nil {
			continue
		}

		flag.Category = d.Category
		flag.Score = clamp01(flag.Score)
		flag.Evidence = clampEvidence(flag.Evidence)
		report.Flags = append(report.Flags, *flag)
		report.Summary.Fired++
		report.Summary.BySeverity[flag.Severity]++
	}

	SortFlags(report.Flags)
	return report
}

// runIsolated executes one detector, converting a panic into an error.
func runIsolated(d Detector, ctx *Context) (flag *Flag, err error) {
	defer func() {
		if r := recover(); r != nil {
			flag = nil
			err = fmt.Errorf("detector %s panicked: %v", d.ID, r)
		}
	}()
	return d.Run(ctx), nil
}

// interpolate maps value linearly onto [0,1] between the "just triggered"
// boundary lo and the "maximally triggered" boundary hi. Works for inverted
// ranges (lo > hi) as well.
func interpolate(value, lo, hi float64) float64 {
	if lo == hi {
		return 1
	}
	return clamp01((value - lo) / (hi - lo))
}

// severityFor buckets a score into a severity band.
func severityFor(score float64) Severity {
	switch {
	case score >= 0.85:
		return SeverityCritical
	case score >= 0.6:
		return SeverityHigh
	case score >= 0.3:
		return SeverityMid
	default:
		return SeverityLow
	}
}
