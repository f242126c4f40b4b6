package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/logger"
)

// Application represents the main application
type Application struct {
	configPath string
	config     *config.Config
	session    *dashboard.Session
	isRunning  bool
}

// New creates a new application instance
func New(configPath string) *Application {
	return &Application{
		configPath: configPath,
		isRunning:  false,
	}
}

// Initialize loads configuration, the sample data and starts the dashboard session
func (a *Application) Initialize() error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	session, err := NewSession(cfg)
	if err != nil {
		return err
	}
	if err := session.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard session: %w", err)
	}
	a.session = session

	logger.Info("Application initialized successfully",
		logger.String("config", a.configPath),
		logger.Int("connections", len(session.Catalog().Connections())))
	a.isRunning = true
	return nil
}

// LoadConfig reads the configuration at path, or the defaults when the file does not exist
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.GetDefaultConfig(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Configuration file not found, using defaults",
			logger.String("path", path))
		return config.GetDefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// GetConfig returns the application configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetSession returns the running dashboard session
func (a *Application) GetSession() *dashboard.Session {
	return a.session
}

// IsRunning reports whether Initialize succeeded and Shutdown has not run
func (a *Application) IsRunning() bool {
	return a.isRunning
}

// Shutdown stops the dashboard session and flushes the logs
func (a *Application) Shutdown() {
	logger.Info("Shutting down application...")

	if a.session != nil {
		a.session.Stop()
	}

	if err := logger.Sync(); err != nil {
		fmt.Printf("Error flushing logs: %v\n", err)
	}

	a.isRunning = false
	logger.Info("Application shutdown complete")
}
