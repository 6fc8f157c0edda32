package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/oremod/oremod/backend/internal/service"
	"github.com/oremod/oremod/shared/api"
	"github.com/oremod/oremod/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFacetStorage struct {
	facets map[domain.ProjectId]domain.FacetSet
	err    error
}

func (m *mockFacetStorage) GetVersionFacets(versionIds []domain.VersionId) (map[domain.ProjectId]domain.FacetSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.facets, nil
}

func newFacetRouter(storage service.FacetStorage) *chi.Mux {
	h := New(nil, service.NewFacet(storage), nil, nil)
	router := chi.NewRouter()
	router.Get("/v1/versions/facets", h.GetVersionFacets)
	return router
}

func TestGetVersionFacetsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router := newFacetRouter(&mockFacetStorage{facets: map[domain.ProjectId]domain.FacetSet{
			50: {Loaders: []string{"fabric", "forge"}, ProjectTypes: []string{"mod"}, Games: []string{"minecraft-java"}},
		}})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/versions/facets?ids=1,2", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.FacetsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Projects, 1)
		assert.Equal(t, []string{"fabric", "forge"}, resp.Projects[50].Loaders)
	})

	t.Run("EmptyIds", func(t *testing.T) {
		router := newFacetRouter(&mockFacetStorage{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/versions/facets", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.FacetsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Projects)
	})

	t.Run("MalformedIds", func(t *testing.T) {
		router := newFacetRouter(&mockFacetStorage{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/versions/facets?ids=x", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("StorageError", func(t *testing.T) {
		router := newFacetRouter(&mockFacetStorage{err: errors.New("query execution failed")})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/versions/facets?ids=1", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
