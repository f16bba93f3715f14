package patterns

import "fmt"

// Company / industry context detectors.
var contextDetectors = []Detector{
	{
		ID:       "ctx-vendor-signal",
		Category: CategoryContext,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.VendorSignals == 0 {
				return nil
			}
			score := interpolate(float64(m.VendorSignals), 0.5, 4)
			return &Flag{
				ID:       "ctx-vendor-signal",
				Title:    "Vendor/outsourcing context in work history",
				Severity: severityFor(score),
				Score:    score,
				Evidence: ctx.Evidence("vendor"),
				Detail:   map[string]any{"vendorSignals": m.VendorSignals},
			}
		},
	},
	{
		ID:       "ctx-low-specificity",
		Category: CategoryContext,
		Run: func(ctx *Context) *Flag {
			m := ctx.Metrics
			if m.ResumeTokens == 0 || m.SpecificityScore > 0.3 {
				return nil
			}
			score := interpolate(m.SpecificityScore, 0.3, 0)
			return &Flag{
				ID:       "ctx-low-specificity",
				Title:    "Generic application with no company or role specifics",
				Severity: severityFor(score),
				Score:    score,
				Evidence: []string{fmt.Sprintf("specificity score %.2f", m.SpecificityScore)},
				Detail:   map[string]any{"specificity": m.SpecificityScore},
			}
		},
	},
}
