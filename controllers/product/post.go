package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// CreateProduct validates the body against the product schema and inserts a
// new catalog entry. Returns the new id as a string.
func CreateProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		if fieldErrs := models.ValidateProduct(&product); len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fieldErrs})
			return
		}

		id, err := st.Insert(c.Request.Context(), models.CollProducts, product.Doc())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, id)
	}
}
