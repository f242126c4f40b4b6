package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "DBDashboard", cfg.AppName)
	assert.Equal(t, 3*time.Second, cfg.Dashboard.NotificationDelay())
	assert.Equal(t, "audit_logs.csv", cfg.Export.FileName)
	assert.True(t, cfg.Export.EscapeFields)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
}

func TestLoadConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
app_name: TestDashboard
server:
  port: 9090
dashboard:
  default_section: settings
  notification_delay_ms: 500
export:
  escape_fields: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "TestDashboard", cfg.AppName)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "settings", cfg.Dashboard.DefaultSection)
	assert.Equal(t, "users", cfg.Dashboard.DefaultMetric)
	assert.Equal(t, 500*time.Millisecond, cfg.Dashboard.NotificationDelay())
	assert.False(t, cfg.Export.EscapeFields)
	assert.Equal(t, "audit_logs.csv", cfg.Export.FileName)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed yaml", content: "server: [", wantErr: "failed to parse config file"},
		{name: "bad delay", content: "dashboard:\n  notification_delay_ms: 0\n", wantErr: "notification_delay_ms"},
		{name: "bad port", content: "server:\n  port: 70000\n", wantErr: "server.port"},
		{name: "auth without secret", content: "api:\n  auth:\n    enabled: true\n", wantErr: "jwt_secret"},
		{name: "bad log format", content: "logs:\n  format: xml\n", wantErr: "logs.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
