package api

import (
	"github.com/oremod/oremod/shared/domain"
)

// FacetsResponse maps project id to the facet sets reachable from the
// requested versions. Projects with no facet rows are absent.
type FacetsResponse struct {
	Projects map[domain.ProjectId]domain.FacetSet `json:"projects"`
}
