// Package sitecontroller serves the read-only site content collections:
// gallery photos, blog posts and the schema introspection endpoint.
package sitecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

const altFallback = "Fotografija"

// GetGallery lists all gallery documents, each normalized: id as a string
// and alt text defaulted from the title when missing.
func GetGallery(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		docs, err := st.Find(c.Request.Context(), models.CollGallery, store.Query{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
			return
		}

		for _, d := range docs {
			if id, ok := d["_id"]; ok {
				d["id"] = id
				delete(d, "_id")
			}
			if alt, ok := d["alt"].(string); !ok || alt == "" {
				if title, ok := d["title"].(string); ok && title != "" {
					d["alt"] = title
				} else {
					d["alt"] = altFallback
				}
			}
		}
		c.JSON(http.StatusOK, docs)
	}
}
