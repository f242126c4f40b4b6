package startup

import (
	"DBDashboard/internal/api/router"
	"DBDashboard/internal/app"
	"DBDashboard/internal/pkg/logger"
)

// StartServer initializes and starts the HTTP server
func StartServer(application *app.Application) *router.Builder {
	builder := router.NewBuilder(application.GetConfig(), application.GetSession()).
		WithAllRoutes()

	go func() {
		if err := builder.Start(); err != nil {
			logger.Error("HTTP server exited", logger.Err(err))
		}
	}()

	return builder
}
