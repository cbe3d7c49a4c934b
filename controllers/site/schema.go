package sitecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
)

// GetSchema exposes the field-name lists per collection for admin tooling.
// Static data, no store involved.
func GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": models.Schemas()})
}
