package service

import (
	"github.com/oremod/oremod/shared/domain"
)

type FacetStorage interface {
	GetVersionFacets(versionIds []domain.VersionId) (map[domain.ProjectId]domain.FacetSet, error)
}

type Facet struct {
	storage FacetStorage
}

func NewFacet(storage FacetStorage) *Facet {
	return &Facet{storage}
}

// GetForVersions returns, per owning project, the deduplicated facet sets
// reachable from the requested version ids. Same batching discipline as
// the thread path: dedup first, empty input short-circuits, projects with
// no facet rows are simply absent.
func (f *Facet) GetForVersions(versionIds []domain.VersionId) (map[domain.ProjectId]domain.FacetSet, error) {
	versionIds = domain.DedupIds(versionIds)
	if len(versionIds) == 0 {
		return map[domain.ProjectId]domain.FacetSet{}, nil
	}
	return f.storage.GetVersionFacets(versionIds)
}
