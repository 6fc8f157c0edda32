package domain

// FacetSet holds the categorical attributes reachable from a project via
// its versions' loader associations. Each slice is deduplicated and sorted
// ascending.
type FacetSet struct {
	Loaders      []string
	ProjectTypes []string
	Games        []string
}
