package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/product"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// SetupProductRoutes registers all "/api/products*" endpoints.
func SetupProductRoutes(r *gin.Engine, st store.Store) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(st))
		products.POST("", productcontroller.CreateProduct(st))
		products.PUT("/:id", productcontroller.UpdateProduct(st))
		products.DELETE("/:id", productcontroller.DeleteProduct(st))
		products.POST("/import-csv", productcontroller.ImportProductsFromCSV(st))
		products.GET("/export-csv", productcontroller.ExportProductsToCSV(st))
		products.GET("/export-excel", productcontroller.ExportProductsToExcel(st))
	}
}
