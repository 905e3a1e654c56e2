package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Species int    `json:"species"`
	Crops   int    `json:"crops"`
}

// HealthCheck reports service liveness plus catalog and inventory sizes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Species: len(engine.Catalog().Species()),
		Crops:   store.Len(),
	})
}
