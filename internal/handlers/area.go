package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmos/crop-service/internal/geo"
	"github.com/farmos/crop-service/internal/stage"
)

// AreaRequest carries a drawn field boundary as a GeoJSON geometry.
type AreaRequest struct {
	Geometry geo.Geometry `json:"geometry" binding:"required"`
}

// AreaResponse is the computed field surface area.
type AreaResponse struct {
	AreaM2    float64 `json:"areaM2"`
	AreaLabel string  `json:"areaLabel"`
}

// ComputeArea returns the approximate area of a drawn polygon.
// POST /fields/area
func ComputeArea(c *gin.Context) {
	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := geo.PolygonArea(&req.Geometry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AreaResponse{
		AreaM2:    area,
		AreaLabel: areaLabel(area),
	})
}

// FieldSaveRequest links a drawn shape to a new inventory record.
type FieldSaveRequest struct {
	Geometry   geo.Geometry `json:"geometry" binding:"required"`
	Name       string       `json:"name" binding:"required"`
	Planted    string       `json:"planted" binding:"required"`
	Qty        string       `json:"qty"`
	RainfallMm *float64     `json:"rainfallMm" binding:"omitempty,min=0"`
}

// FieldSaveResponse reports the stored record and its computed area.
type FieldSaveResponse struct {
	Index     int     `json:"index"`
	AreaM2    float64 `json:"areaM2"`
	AreaLabel string  `json:"areaLabel"`
}

// SaveField computes the drawn shape's area and appends a crop record with
// that area label, mirroring the map-to-inventory flow.
// POST /fields
func SaveField(c *gin.Context) {
	var req FieldSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := stage.ParseDate(req.Planted); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planted must be YYYY-MM-DD"})
		return
	}

	area, err := geo.PolygonArea(&req.Geometry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := stage.CropRecord{
		Name:     req.Name,
		Planted:  req.Planted,
		Quantity: req.Qty,
		Area:     areaLabel(area),
	}
	if req.RainfallMm != nil {
		rec.RainfallMm = *req.RainfallMm
	}

	index := store.Add(rec)
	observeAreaComputed()

	c.JSON(http.StatusCreated, FieldSaveResponse{
		Index:     index,
		AreaM2:    area,
		AreaLabel: areaLabel(area),
	})
}

func areaLabel(areaM2 float64) string {
	return fmt.Sprintf("%d m²", int(areaM2))
}
