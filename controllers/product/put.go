package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// UpdateProduct fully replaces a catalog entry by id. The id is checked
// against the store's id format before any store call.
func UpdateProduct(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		id := c.Param("id")
		if !store.IsValidID(id) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
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

		updated, err := st.ReplaceByID(c.Request.Context(), models.CollProducts, id, product.Doc())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, models.ProductOutFromDoc(updated))
	}
}
