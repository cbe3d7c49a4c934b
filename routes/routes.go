package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// SetupRoutes is the single entry-point that wires up all route groups.
// st may be nil when the database was never configured; handlers then answer
// service-unavailable on their own.
func SetupRoutes(r *gin.Engine, st store.Store) {
	// Site + diagnostics (liveness, store check, read-only content, schema)
	SetupSiteRoutes(r, st)

	// Product catalog CRUD + bulk import/export
	SetupProductRoutes(r, st)

	// Orders, contact messages and the live notification feed
	SetupOrderRoutes(r, st)
}
