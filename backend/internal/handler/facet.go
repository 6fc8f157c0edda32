package handler

import (
	"net/http"

	"github.com/oremod/oremod/shared/api"
	"github.com/oremod/oremod/shared/utils"
)

// GetVersionFacets serves /v1/versions/facets?ids=1,2,3 and maps project id
// to the facet sets reachable from the requested versions.
func (h *Handler) GetVersionFacets(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIdList(r.URL.Query().Get("ids"), "version ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	facets, err := h.facet.GetForVersions(ids)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.FacetsResponse{Projects: facets})
}
