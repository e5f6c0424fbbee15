package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse reports service liveness
type PingResponse struct {
	Message string `json:"message" example:"pong"`            // Response message
	Service string `json:"service" example:"restroom-finder"` // Service name
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the restroom finder service is up
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: "restroom-finder",
	})
}
