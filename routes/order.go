package routes

import (
	"github.com/gin-gonic/gin"
	contactcontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/contact"
	livecontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/live"
	ordercontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/order"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// SetupOrderRoutes registers order placement, contact messages and the
// websocket feed that mirrors their notifications.
func SetupOrderRoutes(r *gin.Engine, st store.Store) {
	r.POST("/api/orders", ordercontroller.CreateOrder(st))
	r.POST("/api/contact", contactcontroller.CreateContact(st))
	r.GET("/ws/notifications", livecontroller.NotificationsHandler)
}
