package pg

import (
	"fmt"
	"sort"

	"github.com/lib/pq"
	"github.com/oremod/oremod/shared/domain"
	sharedpg "github.com/oremod/oremod/shared/storage/pg"
)

// facetRow is one raw row of the facet query: the owning project id plus
// one loader/project-type/game combination surviving the join chain.
type facetRow struct {
	modId       domain.ProjectId
	loader      string
	projectType string
	game        string
}

// GetVersionFacets returns, for every project owning at least one of the
// given versions, the distinct loaders, project types and games reachable
// from those versions. The join chain is version -> loader -> project type
// -> game; a project with no row surviving all joins is absent from the
// result. One aggregated query regardless of batch size.
func (s *Storage) GetVersionFacets(versionIds []domain.VersionId) (map[domain.ProjectId]domain.FacetSet, error) {
	if len(versionIds) == 0 {
		return map[domain.ProjectId]domain.FacetSet{}, nil
	}

	raw, err := queryFacetRows(s.db, versionIds)
	if err != nil {
		return nil, err
	}
	return buildFacets(raw), nil
}

// queryFacetRows runs the facet join chain against any Querier and
// materializes the surviving rows.
func queryFacetRows(q sharedpg.Querier, versionIds []domain.VersionId) ([]facetRow, error) {
	rows, err := q.Query(`
        SELECT DISTINCT v.mod_id, l.loader, pt.name, g.name
        FROM versions v
        INNER JOIN loaders_versions lv ON v.id = lv.version_id
        INNER JOIN loaders l ON lv.loader_id = l.id
        INNER JOIN loaders_project_types lpt ON l.id = lpt.joining_loader_id
        INNER JOIN project_types pt ON lpt.joining_project_type_id = pt.id
        INNER JOIN loaders_project_types_games lptg ON lpt.id = lptg.loader_project_type_id
        INNER JOIN games g ON lptg.game_id = g.id
        WHERE v.id = ANY($1)
    `, pq.Array(versionIds))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch version facets: %w", err)
	}
	defer rows.Close()

	var raw []facetRow
	for rows.Next() {
		var r facetRow
		if err := rows.Scan(&r.modId, &r.loader, &r.projectType, &r.game); err != nil {
			return nil, fmt.Errorf("failed to scan facet row: %w", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return raw, nil
}

type facetAccumulator struct {
	loaders      map[string]struct{}
	projectTypes map[string]struct{}
	games        map[string]struct{}
}

func newFacetAccumulator(facetRow) *facetAccumulator {
	return &facetAccumulator{
		loaders:      make(map[string]struct{}),
		projectTypes: make(map[string]struct{}),
		games:        make(map[string]struct{}),
	}
}

func mergeFacetRow(acc *facetAccumulator, r facetRow) {
	acc.loaders[r.loader] = struct{}{}
	acc.projectTypes[r.projectType] = struct{}{}
	acc.games[r.game] = struct{}{}
}

func (acc *facetAccumulator) finalize() domain.FacetSet {
	return domain.FacetSet{
		Loaders:      sortedKeys(acc.loaders),
		ProjectTypes: sortedKeys(acc.projectTypes),
		Games:        sortedKeys(acc.games),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// buildFacets unions facet values per project across all input versions,
// so a project reachable via several requested versions is reported once.
func buildFacets(rows []facetRow) map[domain.ProjectId]domain.FacetSet {
	accs := foldRows(rows,
		func(r facetRow) domain.ProjectId { return r.modId },
		newFacetAccumulator,
		mergeFacetRow,
	)

	out := make(map[domain.ProjectId]domain.FacetSet, len(accs))
	for id, acc := range accs {
		out[id] = acc.finalize()
	}
	return out
}
