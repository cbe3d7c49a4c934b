package productcontroller

import (
	"encoding/csv"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

// ImportProductsFromCSV bulk-loads catalog rows from an uploaded CSV file.
// Rows are processed in file order and validated independently; a row that
// cannot be parsed or fails the product schema is skipped. Only the aggregate
// inserted count is reported, so partial success is the normal outcome.
func ImportProductsFromCSV(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open CSV file"})
			return
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1

		header, err := reader.Read()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is empty or missing header row"})
			return
		}
		idx := headerIndex(header)

		inserted := 0
		for {
			rec, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				// Unparseable line, keep going with the next one.
				continue
			}
			product, ok := productFromRecord(idx, rec)
			if !ok {
				continue
			}
			if fieldErrs := models.ValidateProduct(&product); len(fieldErrs) > 0 {
				continue
			}
			if _, err := st.Insert(c.Request.Context(), models.CollProducts, product.Doc()); err != nil {
				continue
			}
			inserted++
		}

		c.JSON(http.StatusOK, gin.H{"inserted": inserted})
	}
}
