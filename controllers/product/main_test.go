package productcontroller

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(st store.Store) *gin.Engine {
	r := gin.New()
	r.GET("/api/products", GetProducts(st))
	r.POST("/api/products", CreateProduct(st))
	r.PUT("/api/products/:id", UpdateProduct(st))
	r.DELETE("/api/products/:id", DeleteProduct(st))
	r.POST("/api/products/import-csv", ImportProductsFromCSV(st))
	r.GET("/api/products/export-csv", ExportProductsToCSV(st))
	r.GET("/api/products/export-excel", ExportProductsToExcel(st))
	return r
}

func seedProduct(t *testing.T, m *store.Memory, name, category string, price float64, availability string) string {
	t.Helper()
	p := models.Product{
		Name:         name,
		Category:     category,
		Price:        &price,
		Availability: availability,
	}
	require.Empty(t, models.ValidateProduct(&p))
	id, err := m.Insert(context.Background(), models.CollProducts, p.Doc())
	require.NoError(t, err)
	return id
}
