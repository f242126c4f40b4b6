package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, mutate func(cfg *config.Config)) (*Router, *dashboard.Session) {
	t.Helper()

	cfg := config.GetDefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	catalog, err := dashboard.DefaultCatalog()
	require.NoError(t, err)

	session := dashboard.NewSession(catalog, dashboard.Options{})
	require.NoError(t, session.Start())
	t.Cleanup(session.Stop)

	b := NewBuilder(cfg, session).WithAllRoutes()
	return b.GetRouter(), session
}

func do(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) dashboard.Snapshot {
	t.Helper()
	var snap dashboard.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	return snap
}

func TestHealthAndRoot(t *testing.T) {
	r, session := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DBDashboard")

	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	session.Stop()
	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetDashboardDefaults(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	snap := decodeSnapshot(t, w)
	assert.Equal(t, dashboard.DefaultViewState(), snap.State)
	assert.Len(t, snap.Connections, 2)
	assert.Nil(t, snap.Notification)
}

func TestSelectionEndpoints(t *testing.T) {
	r, session := newTestRouter(t, nil)

	cases := []struct {
		path  string
		body  string
		check func(s dashboard.ViewState)
	}{
		{"/api/dashboard/section", `{"section":"queries"}`, func(s dashboard.ViewState) {
			assert.Equal(t, dashboard.SectionQueries, s.ActiveSection)
		}},
		{"/api/dashboard/chart-style", `{"style":"bar"}`, func(s dashboard.ViewState) {
			assert.Equal(t, dashboard.ChartStyleBar, s.ChartStyle)
		}},
		{"/api/dashboard/metric", `{"metric":"latency"}`, func(s dashboard.ViewState) {
			assert.Equal(t, dashboard.MetricLatency, s.SelectedMetric)
		}},
		{"/api/dashboard/time-range", `{"range":"24h"}`, func(s dashboard.ViewState) {
			assert.Equal(t, dashboard.TimeRange24h, s.SelectedTimeRange)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := do(r, http.MethodPost, tc.path, tc.body, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			tc.check(decodeSnapshot(t, w).State)
			tc.check(session.State())
		})
	}
}

func TestSelectionRejectsInvalidValues(t *testing.T) {
	r, session := newTestRouter(t, nil)
	before := session.State()

	w := do(r, http.MethodPost, "/api/dashboard/section", `{"section":"reports"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/dashboard/metric", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/dashboard/time-range", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, before, session.State())
}

func TestSelectConnection(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/api/connections/2/select", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := decodeSnapshot(t, w)
	assert.True(t, snap.State.NotificationVisible)
	id, ok := snap.State.Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	require.NotNil(t, snap.Notification)
	assert.Equal(t, "Analytics MongoDB", snap.Notification.ConnectionName)

	w = do(r, http.MethodPost, "/api/connections/42/select", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/connections/abc/select", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDispatchOnStoppedSession(t *testing.T) {
	r, session := newTestRouter(t, nil)
	session.Stop()

	w := do(r, http.MethodPost, "/api/dashboard/section", `{"section":"settings"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReadEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/connections", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var conns struct {
		Connections []dashboard.ConnectionCard `json:"connections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conns))
	assert.Len(t, conns.Connections, 2)

	w = do(r, http.MethodGet, "/api/connections/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Production MySQL")

	w = do(r, http.MethodGet, "/api/connections/7", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/queries", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User Analytics")

	w = do(r, http.MethodGet, "/api/charts/metrics?metric=storage", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chart dashboard.MetricChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chart))
	assert.Equal(t, dashboard.MetricStorage, chart.Metric)
	assert.Len(t, chart.Series, 6)

	w = do(r, http.MethodGet, "/api/charts/metrics?metric=disk", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/charts/performance?range=6h", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var perf dashboard.PerformanceChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &perf))
	assert.Equal(t, dashboard.TimeRange6h, perf.Range)
	assert.Len(t, perf.Lines, 3)

	w = do(r, http.MethodGet, "/api/audit-logs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "audit_logs")
}

func TestExportAuditLogs(t *testing.T) {
	r, session := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/audit-logs/export", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="audit_logs.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))

	want, err := dashboard.ExportAuditLog(session.Catalog().AuditLogs(), dashboard.ExportOptions{EscapeFields: true})
	require.NoError(t, err)
	assert.Equal(t, string(want), w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	do(r, http.MethodGet, "/api/dashboard", "", nil)

	w := do(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dbdashboard_http_requests_total{app="DBDashboard",method="GET",route="/api/dashboard",status="200"} 1`)
}

func TestAuthRequiredWhenEnabled(t *testing.T) {
	r, _ := newTestRouter(t, func(cfg *config.Config) {
		cfg.API.Auth = config.AuthConfig{
			Enabled:       true,
			User:          "admin",
			Pass:          "secret",
			JWTSecret:     "test-signing-key",
			JWTExpiration: 60,
		}
	})

	w := do(r, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = do(r, http.MethodGet, "/api/dashboard", "", map[string]string{"Authorization": "Bearer " + login.Token})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/dashboard", "", map[string]string{"Authorization": "Token " + login.Token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
