package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

func listProducts(t *testing.T, st store.Store, rawQuery string) (int, []models.ProductOut) {
	t.Helper()
	r := newRouter(st)
	req := httptest.NewRequest(http.MethodGet, "/api/products?"+rawQuery, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out []models.ProductOut
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func seedCatalog(t *testing.T) *store.Memory {
	t.Helper()
	m := store.NewMemory()
	seedProduct(t, m, "Ruzmarin", "zacinsko bilje", 4.5, "na stanju")
	seedProduct(t, m, "Lavanda", "trajnica", 6, "na stanju")
	seedProduct(t, m, "Božićna zvijezda", "sezonsko cvijece", 9.9, "sezonski")
	seedProduct(t, m, "Lavandin", "trajnica", 7, "rasprodano")
	return m
}

func TestGetProductsNoFiltersSortedByName(t *testing.T) {
	code, out := listProducts(t, seedCatalog(t), "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, out, 4)

	names := []string{out[0].Name, out[1].Name, out[2].Name, out[3].Name}
	assert.Equal(t, []string{"Božićna zvijezda", "Lavanda", "Lavandin", "Ruzmarin"}, names)
	for _, p := range out {
		assert.True(t, store.IsValidID(p.ID), "read projection must carry the id as a hex string")
	}
}

func TestGetProductsFilters(t *testing.T) {
	m := seedCatalog(t)

	tests := []struct {
		name  string
		query string
		wants []string
	}{
		{"category exact match", "category=trajnica", []string{"Lavanda", "Lavandin"}},
		{"category has no partial match", "category=trajn", nil},
		{"availability exact match", "availability=sezonski", []string{"Božićna zvijezda"}},
		{"free text is case-insensitive substring", "q=lavand", []string{"Lavanda", "Lavandin"}},
		{"filters combine with AND", "category=trajnica&availability=rasprodano&q=LAV", []string{"Lavandin"}},
		{"no match is an empty list, not an error", "q=orhideja", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := listProducts(t, m, tt.query)
			require.Equal(t, http.StatusOK, code)
			names := make([]string, 0, len(out))
			for _, p := range out {
				names = append(names, p.Name)
			}
			if tt.wants == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.wants, names)
			}
		})
	}
}

func TestGetProductsWithoutStore(t *testing.T) {
	code, _ := listProducts(t, nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestBuildListQuery(t *testing.T) {
	q := buildListQuery("", "", "")
	assert.Empty(t, q.Equals)
	assert.Empty(t, q.Contains)
	assert.Equal(t, "name", q.SortBy)
	assert.False(t, q.SortDesc)

	q = buildListQuery("trajnica", "na stanju", "lav")
	assert.Equal(t, map[string]any{"category": "trajnica", "availability": "na stanju"}, q.Equals)
	assert.Equal(t, map[string]string{"name": "lav"}, q.Contains)
}
