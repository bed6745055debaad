package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/itsmepratik/oil-change-site-115/catalogue"
	"github.com/itsmepratik/oil-change-site-115/utils"
)

// productResponse shadows the catalogue image key with a presigned URL
// when an S3 bucket is configured.
type productResponse struct {
	catalogue.Product
	Image string `json:"image"`
}

func toProductResponses(ctx context.Context, ps []catalogue.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, productResponse{
			Product: p,
			Image:   utils.PresignImageURL(ctx, p.Image),
		})
	}
	return out
}

// ProductsHandler answers catalogue queries. Query parameters map
// directly onto engine criteria: q, categories, brands, tags (each
// comma-separated and repeatable), featured, and sort.
func ProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	criteria := catalogue.Criteria{
		Query:        q.Get("q"),
		CategoryIDs:  splitParams(q["categories"]),
		Brands:       splitParams(q["brands"]),
		Tags:         splitParams(q["tags"]),
		FeaturedOnly: q.Get("featured") == "true" || q.Get("featured") == "1",
		SortBy:       catalogue.SortByName,
	}
	if key, ok := catalogue.ParseSortKey(q.Get("sort")); ok {
		criteria.SortBy = key
	}

	products := catalogue.Apply(criteria)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"products": toProductResponses(r.Context(), products),
		"total":    len(products),
	})
}

// FeaturedProductsHandler lists the featured subset of the catalogue.
func FeaturedProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	products := catalogue.FeaturedProducts()
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"products": toProductResponses(r.Context(), products),
		"total":    len(products),
	})
}

// CategoriesHandler lists the product categories for filter controls.
func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": catalogue.Categories(),
	})
}

// BrandsHandler lists every catalogue brand, deduplicated and sorted.
func BrandsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"brands": catalogue.AllBrands(),
	})
}

// TagsHandler lists every catalogue tag, deduplicated and sorted.
func TagsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"tags": catalogue.AllTags(),
	})
}

// splitParams flattens repeated, possibly comma-separated query values
// into a clean selection list.
func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
