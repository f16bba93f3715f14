package patterns

// registry is the ordered detector bank. Order never affects any individual
// flag's content; the final flag list is sorted deterministically anyway.
var registry = buildRegistry()

func buildRegistry() []Detector {
	var all []Detector
	all = append(all, timelineDetectors...)
	all = append(all, fitDetectors...)
	all = append(all, ownershipDetectors...)
	all = append(all, impactDetectors...)
	all = append(all, contextDetectors...)
	all = append(all, structureDetectors...)
	all = append(all, languageDetectors...)
	return all
}

// Registry exposes a copy of the detector bank, mainly for tests.
func Registry() []Detector {
	out := make([]Detector, len(registry))
	copy(out, registry)
	return out
}
