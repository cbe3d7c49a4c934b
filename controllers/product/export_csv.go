package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// ExportProductsToCSV downloads the whole catalog as products.csv, in store
// iteration order.
func ExportProductsToCSV(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		docs, err := st.Find(c.Request.Context(), models.CollProducts, store.Query{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=products.csv")
		c.Header("Content-Type", "text/csv; charset=utf-8")

		if err := WriteCatalogCSV(c.Writer, docs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
			return
		}
	}
}
