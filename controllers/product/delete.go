package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// DeleteProduct removes a catalog entry by id.
func DeleteProduct(st store.Store) gin.HandlerFunc {
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

		if err := st.DeleteByID(c.Request.Context(), models.CollProducts, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
