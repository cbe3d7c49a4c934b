package ordercontroller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	livecontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/live"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/notify"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// CreateOrder validates and persists a bouquet/arrangement request, then
// fires the best-effort notifications. Notification failures never affect
// the response: by the time they run, the order is already stored.
func CreateOrder(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		if fieldErrs := models.ValidateOrder(&order); len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fieldErrs})
			return
		}

		id, err := st.Insert(c.Request.Context(), models.CollOrders, order.Doc())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		event := notify.Payload("order", id, order.Doc())
		go notify.SendWebhook(os.Getenv("WEBHOOK_URL"), event)
		livecontroller.Broadcast(event)

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}
