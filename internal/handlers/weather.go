package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmos/crop-service/internal/weather"
)

// GetWeather proxies current conditions and the forecast for a town. An
// upstream failure degrades to an inline error payload; the dashboard keeps
// rendering.
// GET /weather/:place
func GetWeather(c *gin.Context) {
	report, err := weatherSvc.Report(c.Request.Context(), c.Param("place"))
	if err != nil {
		if errors.Is(err, weather.ErrEmptyPlace) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "place is required"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Weather service sync failed."})
		return
	}

	c.JSON(http.StatusOK, report)
}
