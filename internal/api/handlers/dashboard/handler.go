package dashboard

import (
	dash "DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
	"DBDashboard/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Handler contains the dashboard endpoints
type Handler struct {
	view   *ViewHandler
	data   *DataHandler
	export *ExportHandler
}

// NewHandler creates a new dashboard handler over session
func NewHandler(cfg *config.Config, session *dash.Session, m *metrics.Metrics) *Handler {
	return &Handler{
		view:   NewViewHandler(session),
		data:   NewDataHandler(session),
		export: NewExportHandler(cfg, session.Catalog(), m),
	}
}

// GetSnapshot handles the current view model endpoint
func (h *Handler) GetSnapshot(c *gin.Context) { h.view.GetSnapshot(c) }

// SelectSection handles tab switches
func (h *Handler) SelectSection(c *gin.Context) { h.view.SelectSection(c) }

// SelectChartStyle handles line/bar toggles
func (h *Handler) SelectChartStyle(c *gin.Context) { h.view.SelectChartStyle(c) }

// SelectMetric handles metric button clicks
func (h *Handler) SelectMetric(c *gin.Context) { h.view.SelectMetric(c) }

// SelectTimeRange handles time range button clicks
func (h *Handler) SelectTimeRange(c *gin.Context) { h.view.SelectTimeRange(c) }

// SelectConnection handles connection card clicks
func (h *Handler) SelectConnection(c *gin.Context) { h.view.SelectConnection(c) }

// ListConnections handles the connection cards endpoint
func (h *Handler) ListConnections(c *gin.Context) { h.data.ListConnections(c) }

// GetConnection handles the single connection card endpoint
func (h *Handler) GetConnection(c *gin.Context) { h.data.GetConnection(c) }

// ListQueries handles the saved queries endpoint
func (h *Handler) ListQueries(c *gin.Context) { h.data.ListQueries(c) }

// GetMetricChart handles the system metrics chart endpoint
func (h *Handler) GetMetricChart(c *gin.Context) { h.data.GetMetricChart(c) }

// GetPerformanceChart handles the real-time performance chart endpoint
func (h *Handler) GetPerformanceChart(c *gin.Context) { h.data.GetPerformanceChart(c) }

// ListAuditLogs handles the audit log endpoint
func (h *Handler) ListAuditLogs(c *gin.Context) { h.data.ListAuditLogs(c) }

// ExportAuditLogs handles the audit log download
func (h *Handler) ExportAuditLogs(c *gin.Context) { h.export.ExportAuditLogs(c) }
