// Package ai defines the optional enhancement collaborator contract. The
// enhancement is advisory only: it may nudge hypothesis confidence within a
// narrow band and must never gate or block the core computation.
package ai

import "context"

// MaxConfidenceDelta bounds how far an enhancement may move a single
// hypothesis's confidence in either direction.
const MaxConfidenceDelta = 0.15

// Enhancement is the advisory payload returned by an external provider.
type Enhancement struct {
	JDMustHave      []string
	JDNiceToHave    []string
	ResumeSkillTags []string

	// ConfidenceDelta maps hypothesis ids to deltas in
	// [-MaxConfidenceDelta, MaxConfidenceDelta].
	ConfidenceDelta map[string]float64
}

// Delta returns the clamped confidence delta for a hypothesis id, 0 when the
// enhancement is nil or carries no entry.
func (e *Enhancement) Delta(hypothesisID string) float64 {
	if e == nil || e.ConfidenceDelta == nil {
		return 0
	}
	return ClampDelta(e.ConfidenceDelta[hypothesisID])
}

// ClampDelta bounds a raw delta into the allowed band.
func ClampDelta(v float64) float64 {
	if v > MaxConfidenceDelta {
		return MaxConfidenceDelta
	}
	if v < -MaxConfidenceDelta {
		return -MaxConfidenceDelta
	}
	return v
}

// Enhancer produces an enhancement for the given texts. Implementations must
// resolve every failure (network, timeout, malformed response) to nil rather
// than an error; a single attempt is made, no retries.
type Enhancer interface {
	Enhance(ctx context.Context, jd, resume string) *Enhancement
}
