package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farmos/crop-service/internal/inventory"
	"github.com/farmos/crop-service/internal/stage"
)

// CropRequest is the payload for creating or updating a crop record.
// RainfallMm is optional and defaults to 0 when absent.
type CropRequest struct {
	Name       string   `json:"name" binding:"required"`
	Planted    string   `json:"planted" binding:"required"`
	Qty        string   `json:"qty"`
	Area       string   `json:"area"`
	RainfallMm *float64 `json:"rainfallMm" binding:"omitempty,min=0"`
}

func (r *CropRequest) toRecord() stage.CropRecord {
	rec := stage.CropRecord{
		Name:     r.Name,
		Planted:  r.Planted,
		Quantity: r.Qty,
		Area:     r.Area,
	}
	if r.RainfallMm != nil {
		rec.RainfallMm = *r.RainfallMm
	}
	return rec
}

// DashboardResponse is the enriched inventory view.
type DashboardResponse struct {
	ReferenceDate string                     `json:"referenceDate"`
	Summary       stage.Summary              `json:"summary"`
	Crops         []stage.EnrichedCropRecord `json:"crops"`
}

// ListCrops returns the enriched, display-sorted inventory.
// GET /crops
func ListCrops(c *gin.Context) {
	ref := stage.Today(clock)

	enriched := engine.Enrich(store.List(), ref)
	stage.SortForDisplay(enriched)

	c.JSON(http.StatusOK, DashboardResponse{
		ReferenceDate: ref.Format(stage.DateFormat),
		Summary:       stage.Summarize(enriched),
		Crops:         enriched,
	})
}

// CreateCrop appends a new crop record.
// POST /crops
func CreateCrop(c *gin.Context) {
	var req CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := req.toRecord()
	if _, err := stage.ParseDate(rec.Planted); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planted must be YYYY-MM-DD"})
		return
	}

	index := store.Add(rec)
	c.JSON(http.StatusCreated, gin.H{"index": index})
}

// UpdateCrop replaces the record at the given index.
// PUT /crops/:index
func UpdateCrop(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	var req CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.Update(index, req.toRecord()); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "crop record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update crop"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCrop removes the record at the given index.
// DELETE /crops/:index
func DeleteCrop(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	if err := store.Delete(index); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "crop record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete crop"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceInventoryRequest is the bulk-save payload of the inventory editor.
type ReplaceInventoryRequest struct {
	Crops []CropRequest `json:"crops" binding:"required"`
}

// ReplaceInventory swaps the whole record list in one call.
// PUT /crops
func ReplaceInventory(c *gin.Context) {
	var req ReplaceInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := make([]stage.CropRecord, 0, len(req.Crops))
	for _, cr := range req.Crops {
		records = append(records, cr.toRecord())
	}
	store.Replace(records)

	c.JSON(http.StatusOK, gin.H{"count": len(records)})
}
