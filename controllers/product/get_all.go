package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// buildListQuery translates the optional listing filters into a store query.
// Absent filters impose no constraint; results always come back sorted by
// name ascending.
func buildListQuery(category, availability, q string) store.Query {
	query := store.Query{
		Equals:   map[string]any{},
		Contains: map[string]string{},
		SortBy:   "name",
	}
	if category != "" {
		query.Equals["category"] = category
	}
	if availability != "" {
		query.Equals["availability"] = availability
	}
	if q != "" {
		query.Contains["name"] = q
	}
	return query
}

// GetProducts lists the catalog, filtered by category, availability and
// free-text name search. An empty result is a valid empty list, not an error.
func GetProducts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		query := buildListQuery(c.Query("category"), c.Query("availability"), c.Query("q"))
		docs, err := st.Find(c.Request.Context(), models.CollProducts, query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		out := make([]models.ProductOut, 0, len(docs))
		for _, d := range docs {
			out = append(out, models.ProductOutFromDoc(d))
		}
		c.JSON(http.StatusOK, out)
	}
}
