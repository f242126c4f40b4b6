package dashboard

import (
	"fmt"
	"net/http"
	"strconv"

	"DBDashboard/internal/api/handlers"
	dash "DBDashboard/internal/dashboard"

	"github.com/gin-gonic/gin"
)

// ViewHandler applies user interactions to the dashboard session
type ViewHandler struct {
	session *dash.Session
}

// NewViewHandler creates a new view handler
func NewViewHandler(session *dash.Session) *ViewHandler {
	return &ViewHandler{session: session}
}

// GetSnapshot returns the current view model
func (h *ViewHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Snapshot())
}

// SelectSection switches the active tab
func (h *ViewHandler) SelectSection(c *gin.Context) {
	var body struct {
		Section string `json:"section" binding:"required"`
	}
	if !bindBody(c, &body) {
		return
	}
	section, err := dash.ParseSection(body.Section)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	h.dispatch(c, dash.SelectSection{Section: section})
}

// SelectChartStyle switches between line and bar charts
func (h *ViewHandler) SelectChartStyle(c *gin.Context) {
	var body struct {
		Style string `json:"style" binding:"required"`
	}
	if !bindBody(c, &body) {
		return
	}
	style, err := dash.ParseChartStyle(body.Style)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	h.dispatch(c, dash.SelectChartStyle{Style: style})
}

// SelectMetric picks the series of the metrics chart
func (h *ViewHandler) SelectMetric(c *gin.Context) {
	var body struct {
		Metric string `json:"metric" binding:"required"`
	}
	if !bindBody(c, &body) {
		return
	}
	metric, err := dash.ParseMetric(body.Metric)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	h.dispatch(c, dash.SelectMetric{Metric: metric})
}

// SelectTimeRange picks the window of the performance chart
func (h *ViewHandler) SelectTimeRange(c *gin.Context) {
	var body struct {
		Range string `json:"range" binding:"required"`
	}
	if !bindBody(c, &body) {
		return
	}
	r, err := dash.ParseTimeRange(body.Range)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	h.dispatch(c, dash.SelectTimeRange{Range: r})
}

// SelectConnection marks a connection card as clicked
func (h *ViewHandler) SelectConnection(c *gin.Context) {
	id, ok := connectionID(c)
	if !ok {
		return
	}
	h.dispatch(c, dash.SelectConnection{ConnectionID: id})
}

func (h *ViewHandler) dispatch(c *gin.Context, event dash.Event) {
	snap, err := h.session.Dispatch(c.Request.Context(), event)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func bindBody(c *gin.Context, body any) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return false
	}
	return true
}

func connectionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid connection id %q", c.Param("id")),
		})
		return 0, false
	}
	return id, true
}
