package sitecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// GetPosts lists published blog posts, newest first. Unpublished posts never
// appear, whatever else is stored on them.
func GetPosts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		query := store.Query{
			Equals:   map[string]any{"published": true},
			SortBy:   "_id",
			SortDesc: true,
		}
		docs, err := st.Find(c.Request.Context(), models.CollPosts, query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
			return
		}

		for _, d := range docs {
			if id, ok := d["_id"]; ok {
				d["id"] = id
				delete(d, "_id")
			}
		}
		c.JSON(http.StatusOK, docs)
	}
}
