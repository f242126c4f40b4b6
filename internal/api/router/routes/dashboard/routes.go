package dashboard

import (
	handlers "DBDashboard/internal/api/handlers/dashboard"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the dashboard API routes
func RegisterRoutes(router *gin.Engine, handler *handlers.Handler) {
	api := router.Group("/api")
	{
		api.GET("/dashboard", handler.GetSnapshot)

		selection := api.Group("/dashboard")
		{
			selection.POST("/section", handler.SelectSection)
			selection.POST("/chart-style", handler.SelectChartStyle)
			selection.POST("/metric", handler.SelectMetric)
			selection.POST("/time-range", handler.SelectTimeRange)
		}

		connections := api.Group("/connections")
		{
			connections.GET("", handler.ListConnections)
			connections.GET("/:id", handler.GetConnection)
			connections.POST("/:id/select", handler.SelectConnection)
		}

		api.GET("/queries", handler.ListQueries)

		charts := api.Group("/charts")
		{
			charts.GET("/metrics", handler.GetMetricChart)
			charts.GET("/performance", handler.GetPerformanceChart)
		}

		audit := api.Group("/audit-logs")
		{
			audit.GET("", handler.ListAuditLogs)
			audit.GET("/export", handler.ExportAuditLogs)
		}
	}
}
