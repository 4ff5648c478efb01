package main

import (
	"net/http"

	"city-lookup/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/ready", app.handleReady)

	// City endpoints
	v1 := app.router.Group("/api/v1")
	v1.GET("/cities", app.handleListCities)
	v1.GET("/cities/:city", app.handleGetCity)

	// Form endpoints
	v1.POST("/lookup", app.handleSubmitLookup)
	v1.GET("/lookup/current", app.handleGetCurrentLookup)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
