package ordercontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postOrder(t *testing.T, st store.Store, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.POST("/api/orders", CreateOrder(st))
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	m := store.NewMemory()
	w := postOrder(t, m, `{
		"full_name": "Ana Anić",
		"phone": "+385 91 000 0000",
		"event_date": "2026-06-15",
		"budget_eur": 80,
		"consent": true
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, store.IsValidID(resp.ID))
	require.Equal(t, 1, m.Count(models.CollOrders))

	docs, err := m.Find(t.Context(), models.CollOrders, store.Query{})
	require.NoError(t, err)
	assert.Equal(t, true, docs[0]["pickup"], "pickup defaults to true")
	assert.Equal(t, false, docs[0]["delivery"], "delivery defaults to false")
}

func TestCreateOrderWithoutConsent(t *testing.T) {
	m := store.NewMemory()
	w := postOrder(t, m, `{"full_name":"Ana Anić","phone":"+385 91 000 0000"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []models.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "consent", resp.Fields[0].Field)
	assert.Zero(t, m.Count(models.CollOrders))
}

func TestCreateOrderWithoutStore(t *testing.T) {
	w := postOrder(t, nil, `{"full_name":"A","phone":"1","consent":true}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
