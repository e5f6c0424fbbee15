package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restroom-finder/internal/resolver"
	"restroom-finder/internal/types"
)

// GetNearbyFacilitiesInput defines the query parameters for the nearby endpoint
type GetNearbyFacilitiesInput struct {
	Latitude   float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude  float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Radius     float64 `form:"radius"`                       // Search radius in meters, defaults from config
	MaxResults int     `form:"max_results"`                  // Result cap, defaults from config
}

// NearbyFacilitiesResponse lists facilities sorted ascending by distance
type NearbyFacilitiesResponse struct {
	Facilities []types.Facility `json:"facilities"`
	Count      int              `json:"count"`
}

// handleGetNearbyFacilities godoc
// @Summary Find nearby public restrooms
// @Description Resolve the nearest public restrooms for a coordinate, merging the local dataset with an OpenStreetMap fallback and ranking by great-circle distance
// @Tags facilities
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(25.0330)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(121.5654)
// @Param radius query number false "Search radius in meters" example(500)
// @Param max_results query integer false "Maximum number of results" example(5)
// @Success 200 {object} NearbyFacilitiesResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/facilities/nearby [get]
func (app *App) handleGetNearbyFacilities(c *gin.Context) {
	var input GetNearbyFacilitiesInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := resolver.Query{
		Center:       types.NewPoint(input.Latitude, input.Longitude),
		RadiusMeters: input.Radius,
		MinResults:   app.cfg.Resolver.MinResults,
		MaxResults:   input.MaxResults,
	}
	if query.RadiusMeters <= 0 {
		query.RadiusMeters = app.cfg.Resolver.RadiusMeters
	}
	if query.MaxResults <= 0 {
		query.MaxResults = app.cfg.Resolver.MaxResults
	}

	// Delegate to business layer
	facilities, err := app.resolverSvc.FindNearest(c.Request.Context(), query)
	if err != nil {
		app.logger.Error("failed to resolve nearby facilities",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find nearby facilities"})
		return
	}

	c.JSON(http.StatusOK, NearbyFacilitiesResponse{
		Facilities: facilities,
		Count:      len(facilities),
	})
}
