package contactcontroller

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	livecontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/live"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/notify"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// CreateContact validates and persists a contact-form message, then fires
// the best-effort notifications.
func CreateContact(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		var msg models.Contact
		if err := c.ShouldBindJSON(&msg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		if fieldErrs := models.ValidateContact(&msg); len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fieldErrs})
			return
		}

		id, err := st.Insert(c.Request.Context(), models.CollContact, msg.Doc())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}

		event := notify.Payload("contact", id, msg.Doc())
		go notify.SendWebhook(os.Getenv("WEBHOOK_URL"), event)
		livecontroller.Broadcast(event)

		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}
