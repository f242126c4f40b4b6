package dashboard

import (
	"fmt"
	"net/http"

	"DBDashboard/internal/api/handlers"
	dash "DBDashboard/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// DataHandler serves read-only views of the sample data
type DataHandler struct {
	session *dash.Session
}

// NewDataHandler creates a new data handler
func NewDataHandler(session *dash.Session) *DataHandler {
	return &DataHandler{session: session}
}

// ListConnections returns every connection card
func (h *DataHandler) ListConnections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connections": h.session.Snapshot().Connections,
	})
}

// GetConnection returns a single connection card
func (h *DataHandler) GetConnection(c *gin.Context) {
	id, ok := connectionID(c)
	if !ok {
		return
	}
	conn, found := h.session.Catalog().Connection(id)
	if !found {
		handlers.HandleError(c, fmt.Errorf("%w: %d", dash.ErrUnknownConnection, id))
		return
	}
	c.JSON(http.StatusOK, dash.NewConnectionCard(conn))
}

// ListQueries returns the saved queries joined with their connection
func (h *DataHandler) ListQueries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"queries": dash.QueryRows(h.session.Catalog()),
	})
}

// GetMetricChart returns the metrics chart; ?metric= overrides the selected metric
func (h *DataHandler) GetMetricChart(c *gin.Context) {
	state := h.session.State()
	metric := state.SelectedMetric
	if raw := c.Query("metric"); raw != "" {
		m, err := dash.ParseMetric(raw)
		if err != nil {
			handlers.HandleError(c, err)
			return
		}
		metric = m
	}
	c.JSON(http.StatusOK, dash.BuildMetricChart(h.session.Catalog().ChartData(), state.ChartStyle, metric))
}

// GetPerformanceChart returns the performance chart; ?range= overrides the selected range
func (h *DataHandler) GetPerformanceChart(c *gin.Context) {
	r := h.session.State().SelectedTimeRange
	if raw := c.Query("range"); raw != "" {
		parsed, err := dash.ParseTimeRange(raw)
		if err != nil {
			handlers.HandleError(c, err)
			return
		}
		r = parsed
	}
	c.JSON(http.StatusOK, dash.BuildPerformanceChart(h.session.Catalog().Performance(), r))
}

// ListAuditLogs returns the audit log
func (h *DataHandler) ListAuditLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"audit_logs": dash.AuditLogRows(h.session.Catalog().AuditLogs()),
	})
}
