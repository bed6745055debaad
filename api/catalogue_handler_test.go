package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productsResponse struct {
	Products []struct {
		ID       string `json:"id"`
		Brand    string `json:"brand"`
		Image    string `json:"image"`
		Featured bool   `json:"featured"`
	} `json:"products"`
	Total int `json:"total"`
}

func getProducts(t *testing.T, target string) productsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	ProductsHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestProductsHandler(t *testing.T) {
	t.Run("DefaultListsFullCatalogueByName", func(t *testing.T) {
		resp := getProducts(t, "/api/products")
		assert.Equal(t, 6, resp.Total)
		require.NotEmpty(t, resp.Products)
		assert.Equal(t, "bosch-3323", resp.Products[0].ID)
	})

	t.Run("CategoryFilterWithNewestSort", func(t *testing.T) {
		resp := getProducts(t, "/api/products?categories=filters&sort=newest")
		assert.Equal(t, 4, resp.Total)
		assert.Equal(t, "wix-51515", resp.Products[0].ID)
	})

	t.Run("TextSearch", func(t *testing.T) {
		resp := getProducts(t, "/api/products?q=shell")
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "shell-rotella-t6", resp.Products[0].ID)
	})

	t.Run("FeaturedOnly", func(t *testing.T) {
		resp := getProducts(t, "/api/products?featured=true")
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "fram-ph7317", resp.Products[0].ID)
	})

	t.Run("CommaSeparatedBrands", func(t *testing.T) {
		resp := getProducts(t, "/api/products?brands=Shell,WIX")
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("UnknownSelectionYieldsEmptyList", func(t *testing.T) {
		resp := getProducts(t, "/api/products?categories=batteries")
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("ImagePassesThroughWithoutBucket", func(t *testing.T) {
		resp := getProducts(t, "/api/products?q=shell")
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "/catalogue/Shell-20W50.png", resp.Products[0].Image)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		rr := httptest.NewRecorder()
		ProductsHandler(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestFeaturedProductsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products/featured", nil)
	rr := httptest.NewRecorder()
	FeaturedProductsHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp productsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.True(t, resp.Products[0].Featured)
}

func TestCategoriesHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	CategoriesHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 6)
	assert.Equal(t, "lubricants", resp.Categories[0].ID)
}

func TestBrandsAndTagsHandlers(t *testing.T) {
	t.Run("Brands", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
		rr := httptest.NewRecorder()
		BrandsHandler(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Brands []string `json:"brands"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []string{"Bosch", "FRAM", "K&N", "Shell", "Valvoline", "WIX"}, resp.Brands)
	})

	t.Run("Tags", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
		rr := httptest.NewRecorder()
		TagsHandler(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Tags []string `json:"tags"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Tags, "oil-filter")
		assert.Contains(t, resp.Tags, "synthetic")
	})
}

func TestSelectorsHandlers(t *testing.T) {
	t.Run("Oils", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/oils", nil)
		rr := httptest.NewRecorder()
		OilsHandler(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Oils []struct {
				ID     string `json:"id"`
				Grades []struct {
					Name string `json:"name"`
				} `json:"grades"`
			} `json:"oils"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Oils, 7)
		assert.Equal(t, "castrol", resp.Oils[0].ID)
		assert.NotEmpty(t, resp.Oils[0].Grades)
	})

	t.Run("Vehicles", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
		rr := httptest.NewRecorder()
		VehiclesHandler(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Vehicles []struct {
				ID string `json:"id"`
			} `json:"vehicles"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Vehicles, 10)
	})

	t.Run("FilterQualities", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/filter-qualities", nil)
		rr := httptest.NewRecorder()
		FilterQualitiesHandler(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Options []struct {
				ID string `json:"id"`
			} `json:"options"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Options, 3)
		assert.Equal(t, "oem", resp.Options[0].ID)
	})
}
