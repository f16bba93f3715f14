package risk

// registry is the ordered profile list: gates first, then ordinary groups.
// Profiles never mutate shared state; each is independently testable against
// a synthetic Input.
var registry = buildRegistry()

func buildRegistry() []Profile {
	var all []Profile
	all = append(all, gateProfiles...)
	all = append(all, fitProfiles...)
	all = append(all, timelineProfiles...)
	all = append(all, ownershipProfiles...)
	all = append(all, impactProfiles...)
	all = append(all, contextProfiles...)
	all = append(all, structureProfiles...)
	all = append(all, languageProfiles...)
	return all
}

// Registry exposes a copy of the registered profiles, mainly for tests.
func Registry() []Profile {
	out := make([]Profile, len(registry))
	copy(out, registry)
	return out
}
