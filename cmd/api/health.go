package main

import (
	"net/http"

	"city-lookup/internal/registry"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// ReadyResponse represents the response for the readiness endpoint
type ReadyResponse struct {
	Status string `json:"status" example:"ready"` // ready or degraded
	Cities int    `json:"cities" example:"7"`     // Number of supported cities
	Error  string `json:"error,omitempty"`        // Registry problem, if any
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleReady godoc
// @Summary Readiness check
// @Description Report whether the city registry is usable
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /ready [get]
func (app *App) handleReady(c *gin.Context) {
	if err := registry.Validate(); err != nil {
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "degraded", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Cities: len(registry.Names())})
}
