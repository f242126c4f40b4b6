package dashboard

import (
	"fmt"
	"net/http"

	"DBDashboard/internal/api/handlers"
	dash "DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/logger"
	"DBDashboard/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves the audit log as a CSV download
type ExportHandler struct {
	catalog  *dash.Catalog
	fileName string
	options  dash.ExportOptions
	metrics  *metrics.Metrics
}

// NewExportHandler creates a new export handler
func NewExportHandler(cfg *config.Config, catalog *dash.Catalog, m *metrics.Metrics) *ExportHandler {
	fileName := cfg.Export.FileName
	if fileName == "" {
		fileName = dash.DefaultExportFileName
	}
	return &ExportHandler{
		catalog:  catalog,
		fileName: fileName,
		options:  dash.ExportOptions{EscapeFields: cfg.Export.EscapeFields},
		metrics:  m,
	}
}

// ExportAuditLogs writes the audit log CSV with a download disposition
func (h *ExportHandler) ExportAuditLogs(c *gin.Context) {
	entries := h.catalog.AuditLogs()
	data, err := dash.ExportAuditLog(entries, h.options)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveExport("http", len(entries))
	}
	logger.Info("Audit log exported",
		logger.Int("entries", len(entries)),
		logger.String("file_name", h.fileName),
		logger.String("client_ip", c.ClientIP()))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.fileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
