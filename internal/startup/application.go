package startup

import (
	"os"

	"DBDashboard/internal/app"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/logger"
	"DBDashboard/internal/utils/finder"
)

// InitializeApplication initializes the application with the given config path
func InitializeApplication(configPath string) *app.Application {
	// A missing file is allowed; the application falls back to defaults
	foundConfigPath, err := finder.FindConfigFile(configPath, false)
	if err != nil {
		logger.Error("Failed to resolve configuration path", logger.Err(err))
		os.Exit(1)
	}

	logger.Info("Using configuration file", logger.String("path", foundConfigPath))

	application := app.New(foundConfigPath)
	if err := application.Initialize(); err != nil {
		logger.Error("Failed to initialize application", logger.Err(err))
		os.Exit(1)
	}

	return application
}

// SetupDefaultLogger initializes a default logger for early startup
func SetupDefaultLogger() {
	if err := logger.Init(config.GetDefaultConfig()); err != nil {
		// Can't use logger yet
		panic("Error initializing logger: " + err.Error())
	}
}
