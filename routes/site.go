package routes

import (
	"github.com/gin-gonic/gin"
	healthcontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/health"
	sitecontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/site"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// SetupSiteRoutes registers liveness/diagnostics and the read-only site
// content endpoints.
func SetupSiteRoutes(r *gin.Engine, st store.Store) {
	r.GET("/", healthcontroller.Root)
	r.GET("/test", healthcontroller.TestDatabase(st))

	r.GET("/api/gallery", sitecontroller.GetGallery(st))
	r.GET("/api/posts", sitecontroller.GetPosts(st))
	r.GET("/schema", sitecontroller.GetSchema)
}
