package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmos/crop-service/internal/inventory"
	"github.com/farmos/crop-service/internal/stage"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportInventory downloads the enriched inventory as a spreadsheet.
// GET /crops/export
func ExportInventory(c *gin.Context) {
	enriched := engine.Enrich(store.List(), stage.Today(clock))
	stage.SortForDisplay(enriched)

	var buf bytes.Buffer
	if err := inventory.ExportXLSX(&buf, enriched); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="inventory.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
