package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test")

	m.ObserveTransition("select_section")
	m.ObserveTransition("select_section")
	m.ObserveExport("http", 3)
	m.ObserveRequest("GET", "/api/dashboard", "200")
	m.SetWebSocketClients(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("select_section")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("http")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.exportedRows))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.wsClients))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("test")
	m.ObserveTransition("select_metric")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dbdashboard_view_transitions_total{app="test",event="select_metric"} 1`)
}
