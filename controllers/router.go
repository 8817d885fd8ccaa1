package controllers

import (
	"net/http"

	_ "gbsorgapi/docs"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// health reports liveness
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func health(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, HealthResponse{Status: "ok"})
}

// NewRouter wires every route onto a gin engine. API routes under /api require
// a caller identity resolved from jwtSecret (see utils.AuthMiddleware).
func NewRouter(jwtSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), utils.LoggerMiddleware())

	router.GET("/health", health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(utils.AuthMiddleware(jwtSecret))
	{
		RegisterCatalogRoutes(api)
		RegisterResolutionRoutes(api)
		RegisterAssignmentRoutes(api)
		RegisterDelegationRoutes(api)
		RegisterReorganizationRoutes(api)
		RegisterAttendanceRoutes(api)
		RegisterStatisticsRoutes(api)
	}
	return router
}
