// Package healthcontroller serves the liveness message and the store
// connectivity diagnostic.
package healthcontroller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// Root answers the liveness check.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Rasadnik i Cvjećarna Mimoza API"})
}

// TestDatabase reports store connectivity in a strict three-state model
// (unconfigured, connected, error), whether the two database configuration
// values are set, and the existing collection names when connected.
func TestDatabase(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":       "running",
			"database":      "unconfigured",
			"database_url":  os.Getenv("DATABASE_URL") != "",
			"database_name": os.Getenv("DATABASE_NAME") != "",
			"collections":   []string{},
		}
		if st == nil {
			c.JSON(http.StatusOK, response)
			return
		}

		ctx := c.Request.Context()
		if err := st.Ping(ctx); err != nil {
			response["database"] = "error: " + err.Error()
			c.JSON(http.StatusOK, response)
			return
		}

		response["database"] = "connected"
		if collections, err := st.CollectionNames(ctx); err == nil {
			response["collections"] = collections
		} else {
			response["database"] = "error: " + err.Error()
		}
		c.JSON(http.StatusOK, response)
	}
}
