package main

import (
	"net/http"

	"weatherwear/internal/providers/rest"
	"weatherwear/internal/recommend"

	"github.com/gin-gonic/gin"
)

// RecommendationResponse carries the clothing advice
type RecommendationResponse struct {
	Message string `json:"message" example:"It is cold so you should wear warm clothing."`
}

// GetAirportRecommendationInput defines the query parameters for the airport endpoint
type GetAirportRecommendationInput struct {
	Code string `form:"code" binding:"required"` // IATA airport code, uppercase
	Date string `form:"date" binding:"required"` // Arrival date, YYYY-MM-DD
}

// handleGetCurrentRecommendation godoc
// @Summary Recommend clothing for the current location
// @Description Geolocate the server by IP and recommend clothing for today's weather there
// @Tags recommendations
// @Produce json
// @Success 200 {object} RecommendationResponse
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /recommendations/current [get]
func (app *App) handleGetCurrentRecommendation(c *gin.Context) {
	message, err := app.recommendService.ForCurrentLocation(c.Request.Context())
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{Message: message})
}

// handleGetAirportRecommendation godoc
// @Summary Recommend clothing for arriving at an airport
// @Description Recommend clothing for the forecast weather at an airport on a date up to 10 days ahead
// @Tags recommendations
// @Produce json
// @Param code query string true "IATA airport code" example(MLA)
// @Param date query string true "Arrival date (YYYY-MM-DD)" example(2023-01-01)
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /recommendations/airport [get]
func (app *App) handleGetAirportRecommendation(c *gin.Context) {
	var input GetAirportRecommendationInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := app.recommendService.ForAirportAndDate(c.Request.Context(), input.Code, input.Date)
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{Message: message})
}

func (app *App) respondError(c *gin.Context, err error) {
	switch {
	case recommend.IsInvalidRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case rest.IsUpstreamError(err):
		app.logger.Error("upstream provider failed",
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather provider unavailable"})
	default:
		app.logger.Error("failed to recommend clothing",
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recommend clothing"})
	}
}
