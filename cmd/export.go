package cmd

import (
	"fmt"
	"io"
	"os"

	"DBDashboard/internal/app"
	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	exportOutput string
)

// exportCmd writes the audit log CSV without starting the service
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit log as CSV",
	Long: `Export the audit log of the configured sample data as CSV.
Use -o - to write to standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(configPath)
		if err != nil {
			return err
		}

		output := exportOutput
		if output == "" {
			output = cfg.Export.FileName
		}

		if output == "-" {
			return exportAuditLog(cfg, cmd.OutOrStdout())
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		if err := exportAuditLog(cfg, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Audit log written to %s\n", output)
		return nil
	},
}

// exportAuditLog writes the CSV of the configured catalog to w
func exportAuditLog(cfg *config.Config, w io.Writer) error {
	catalog, err := app.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	entries := catalog.AuditLogs()
	data, err := dashboard.ExportAuditLog(entries, dashboard.ExportOptions{EscapeFields: cfg.Export.EscapeFields})
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}

	logger.Debug("Audit log exported", logger.Int("entries", len(entries)))
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default from export.file_name, - for stdout)")
}
