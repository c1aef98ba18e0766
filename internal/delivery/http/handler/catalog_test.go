package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilipiu/catalog-api/internal/fallback"
	"github.com/mobilipiu/catalog-api/internal/pkg/logger"
	"github.com/mobilipiu/catalog-api/internal/usecase/catalog"
)

// newCatalogRouter builds the reference-data routes over the static dataset
func newCatalogRouter() http.Handler {
	log := logger.New("test")
	service := catalog.NewService(nil, nil, fallback.NewPolicy(false), log)
	h := NewCatalogHandler(service, log)

	r := chi.NewRouter()
	r.Get("/api/brands", h.Brands)
	r.Get("/api/brands/{name}", h.BrandByName)
	r.Get("/api/categories", h.Categories)
	r.Get("/api/categories/{category}", h.CategoryByName)
	r.Get("/api/subcategories", h.Subcategories)
	r.Get("/api/filter-options", h.FilterOptions)
	return r
}

type successEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func TestCatalogHandler_Brands(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	var brands []map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &brands))
	assert.Len(t, brands, 12)
}

func TestCatalogHandler_BrandByName_CaseInsensitive(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/brands/bosch", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var brand map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &brand))
	assert.Equal(t, "Bosch", brand["name"])
}

func TestCatalogHandler_BrandByName_NotFound(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/brands/Nepoznati", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Brand nije pronađen", body["message"])
}

func TestCatalogHandler_CategoryByName_NotFound(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/categories/Nepostojeca", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Kategorija nije pronađena", body["message"])
}

func TestCatalogHandler_FilterOptions(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/filter-options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Brands        []string `json:"brands"`
			Categories    []string `json:"categories"`
			Subcategories []string `json:"subcategories"`
			PriceRange    struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
			} `json:"priceRange"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Brands)
	assert.NotEmpty(t, body.Data.Categories)
	assert.NotEmpty(t, body.Data.Subcategories)
	assert.Less(t, body.Data.PriceRange.Min, body.Data.PriceRange.Max)
}

func TestCatalogHandler_Subcategories(t *testing.T) {
	router := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/subcategories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var subs []map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Data, &subs))
	assert.NotEmpty(t, subs)
}
