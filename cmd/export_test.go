package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAuditLogMatchesCatalog(t *testing.T) {
	cfg := config.GetDefaultConfig()

	var buf bytes.Buffer
	require.NoError(t, exportAuditLog(cfg, &buf))

	catalog, err := dashboard.DefaultCatalog()
	require.NoError(t, err)
	want, err := dashboard.ExportAuditLog(catalog.AuditLogs(), dashboard.ExportOptions{EscapeFields: true})
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

func TestExportCommandWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "audit.csv")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"export", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "-o", out})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		exportOutput = ""
	})

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, stdout.String(), out)
}
