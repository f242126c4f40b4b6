package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName   string          `yaml:"app_name"`
	Server    ServerConfig    `yaml:"server"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Export    ExportConfig    `yaml:"export"`
	Logs      LogsConfig      `yaml:"logs"`
	API       API             `yaml:"api"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Port           int    `yaml:"port"`
	Host           string `yaml:"host"`
	ReadTimeout    int    `yaml:"read_timeout"`
	WriteTimeout   int    `yaml:"write_timeout"`
	IdleTimeout    int    `yaml:"idle_timeout"`
	MaxHeaderBytes int    `yaml:"max_header_bytes"`
}

// Address returns the host:port the HTTP server listens on
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DashboardConfig holds the initial selections and sample data of the dashboard
type DashboardConfig struct {
	SampleData          string `yaml:"sample_data"` // empty uses the built-in sample data
	NotificationDelayMS int    `yaml:"notification_delay_ms"`
	DefaultSection      string `yaml:"default_section"`
	DefaultChartStyle   string `yaml:"default_chart_style"`
	DefaultMetric       string `yaml:"default_metric"`
	DefaultTimeRange    string `yaml:"default_time_range"`
}

// NotificationDelay returns how long the connection notification stays visible
func (d DashboardConfig) NotificationDelay() time.Duration {
	return time.Duration(d.NotificationDelayMS) * time.Millisecond
}

// ExportConfig holds audit log export configuration
type ExportConfig struct {
	FileName     string `yaml:"file_name"`
	EscapeFields bool   `yaml:"escape_fields"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
	Format   string `yaml:"format"`
	Stdout   bool   `yaml:"stdout"`
}

// LoadConfig loads the configuration from the specified file path.
// Keys missing from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks values that cannot be fixed up at runtime
func (c *Config) Validate() error {
	var errs []error

	if c.AppName == "" {
		errs = append(errs, errors.New("app_name must not be empty"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if c.Dashboard.NotificationDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.notification_delay_ms must be positive, got %d", c.Dashboard.NotificationDelayMS))
	}
	if c.Export.FileName == "" {
		errs = append(errs, errors.New("export.file_name must not be empty"))
	}
	if c.API.Auth.Enabled && c.API.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("api.auth.jwt_secret is required when auth is enabled"))
	}
	switch c.Logs.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logs.format must be json or console, got %q", c.Logs.Format))
	}

	return errors.Join(errs...)
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		AppName: "DBDashboard",
		Server: ServerConfig{
			Port:           8080,
			Host:           "0.0.0.0",
			ReadTimeout:    15,
			WriteTimeout:   15,
			IdleTimeout:    60,
			MaxHeaderBytes: 1 << 20,
		},
		Dashboard: DashboardConfig{
			NotificationDelayMS: 3000,
			DefaultSection:      "connections",
			DefaultChartStyle:   "line",
			DefaultMetric:       "users",
			DefaultTimeRange:    "1h",
		},
		Export: ExportConfig{
			FileName:     "audit_logs.csv",
			EscapeFields: true,
		},
		Logs: LogsConfig{
			Enabled:  true,
			Level:    "info",
			FilePath: "",
			Format:   "console",
			Stdout:   true,
		},
		API: API{
			CORS: CORSConfig{
				Enabled:        true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			},
		},
	}
}
