package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmos/crop-service/internal/stage"
)

// PlannerResponse lists plant-by dates for a target harvest date.
type PlannerResponse struct {
	TargetDate string               `json:"targetDate"`
	Entries    []stage.PlantByEntry `json:"entries"`
}

// HarvestPlanner computes, per species, the latest planting date that
// reaches harvest readiness by the target date.
// GET /planner?target=YYYY-MM-DD
func HarvestPlanner(c *gin.Context) {
	targetStr := c.Query("target")
	if targetStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target query parameter is required"})
		return
	}

	target, err := stage.ParseDate(targetStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, PlannerResponse{
		TargetDate: target.Format(stage.DateFormat),
		Entries:    engine.PlantBySchedule(target),
	})
}
