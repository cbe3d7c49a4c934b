// Package notify delivers best-effort, at-most-once notifications about new
// orders and contact messages. Delivery failures are never reported back to
// the request that triggered them and are never retried.
package notify

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

const webhookTimeout = 5 * time.Second

var client = &http.Client{Timeout: webhookTimeout}

// Payload builds the outbound notification body: the entity fields flattened
// alongside the event type and the new document id.
func Payload(eventType, id string, fields map[string]any) map[string]any {
	payload := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		payload[k] = v
	}
	payload["type"] = eventType
	payload["id"] = id
	return payload
}

// SendWebhook posts the payload as JSON to url. A blank url disables
// delivery. Intended to run on its own goroutine; it never blocks the
// response path beyond the bounded client timeout.
func SendWebhook(url string, payload map[string]any) {
	if url == "" {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("⚠️ Webhook delivery failed: %v", err)
		return
	}
	resp.Body.Close()
}
