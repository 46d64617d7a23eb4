package model

// Registry describes one of the three activity-name registries and where
// youth centers keep their references to it. Every registry-aware handler
// resolves the URL type tag through this table instead of branching.
type Registry struct {
	Tag          string // URL path segment and response type tag
	Table        string // registry table name
	CenterColumn string // uuid[] column on youth_centers referencing this registry
	TypeLabel    string // human label used in messages
}

var registries = []Registry{
	{Tag: "sports", Table: "sport_activities", CenterColumn: "center_sports_activities", TypeLabel: "sports"},
	{Tag: "social", Table: "social_activities", CenterColumn: "center_social_activities", TypeLabel: "social"},
	{Tag: "art", Table: "art_activities", CenterColumn: "center_art_activities", TypeLabel: "art"},
}

// RegistryFor resolves a type tag. The second return is false for
// anything outside sports/social/art.
func RegistryFor(tag string) (Registry, bool) {
	for _, r := range registries {
		if r.Tag == tag {
			return r, true
		}
	}
	return Registry{}, false
}

// AllRegistries returns the three registries in fixed order
// (sports, social, art).
func AllRegistries() []Registry {
	out := make([]Registry, len(registries))
	copy(out, registries)
	return out
}

// RegistryTags lists the permitted type tags for error messages.
func RegistryTags() []string {
	tags := make([]string, len(registries))
	for i, r := range registries {
		tags[i] = r.Tag
	}
	return tags
}
