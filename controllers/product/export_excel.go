package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// ExportProductsToExcel downloads the catalog as products.xlsx for admin
// tooling. Columns mirror the CSV export, prefixed with the document id.
func ExportProductsToExcel(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		docs, err := st.Find(c.Request.Context(), models.CollProducts, store.Query{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		headerRow.AddCell().SetValue("id")
		for _, h := range csvHeader {
			headerRow.AddCell().SetValue(h)
		}

		for _, d := range docs {
			p := models.ProductOutFromDoc(d)
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Availability)
			row.AddCell().SetValue(derefOrEmpty(p.SKU))
			row.AddCell().SetValue(collapseNewlines(derefOrEmpty(p.Care)))
			row.AddCell().SetValue(derefOrEmpty(p.Image))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
