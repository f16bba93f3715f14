package risk

// Company / industry context risks.
var contextProfiles = []Profile{
	{
		ID:       "risk-vendor-context",
		Group:    "company-context",
		Layer:    LayerRisk,
		Priority: 35,
		When: func(in *Input) bool {
			if in.HasFlag("ctx-vendor-signal") {
				return true
			}
			return in.Ctx.Metrics.VendorSignals >= 3
		},
		Score: func(in *Input) float64 {
			return in.flagScore("ctx-vendor-signal", 0.5)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "Vendor/outsourcing background may be discounted",
				Why: []string{
					"some product companies discount agency and subcontract experience by default",
				},
				Fix: []string{
					"describe vendor work in product terms: the system, its users, your ongoing ownership",
				},
				EvidenceKeys: []string{"vendorSignals"},
			}
		},
	},
	{
		ID:       "risk-generic-application",
		Group:    "company-context",
		Layer:    LayerRisk,
		Priority: 30,
		When: func(in *Input) bool {
			if in.HasFlag("ctx-low-specificity") {
				return true
			}
			m := in.Ctx.Metrics
			return m.ResumeTokens > 0 && m.SpecificityScore <= 0.1
		},
		Score: func(in *Input) float64 {
			return in.flagScore("ctx-low-specificity", 0.55)
		},
		Explain: func(in *Input) Explanation {
			return Explanation{
				Title: "The application reads as a mass send-out",
				Why: []string{
					"neither the company nor the role is referenced anywhere in the materials",
				},
				Fix: []string{
					"reference the company's product or the role's stated problems at least once",
				},
				EvidenceKeys: []string{"specificityScore"},
			}
		},
	},
}
