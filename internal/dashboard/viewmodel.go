package dashboard

import (
	"fmt"
	"slices"
	"strconv"
)

// NotificationMessage is shown after a connection card is clicked
const NotificationMessage = "Connection successful! Database schema loaded."

// Badge variants understood by the renderer
const (
	BadgeDefault     = "default"
	BadgeDestructive = "destructive"
)

// SectionTab is one entry of the tab bar
type SectionTab struct {
	Key    Section `json:"key"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Notification is the transient banner
type Notification struct {
	Message        string `json:"message"`
	ConnectionID   int    `json:"connection_id"`
	ConnectionName string `json:"connection_name"`
}

// UsageBar is a horizontal usage gauge. Percent is the bar width.
type UsageBar struct {
	Label    string  `json:"label"`
	Used     float64 `json:"used"`
	Total    float64 `json:"total"`
	Unit     string  `json:"unit"`
	Fraction float64 `json:"fraction"`
	Percent  float64 `json:"percent"`
	// Text is the caption under the gauge, e.g. "75/128 GB"
	Text string `json:"text"`
}

// ConnectionCard is a connection with everything its card displays
type ConnectionCard struct {
	Connection
	ConnectionString string    `json:"connection_string"`
	Latency          string    `json:"latency"`
	BadgeVariant     string    `json:"badge_variant"`
	MemoryUsage      UsageBar  `json:"memory_usage"`
	StorageUsage     UsageBar  `json:"storage_usage"`
	UserSegments     []Segment `json:"user_segments"`
	Selected         bool      `json:"selected"`
}

// QueryRow is a saved query joined with the connection it runs on
type QueryRow struct {
	Query
	Connection   string `json:"connection"`
	LatencyBadge string `json:"latency_badge"`
}

// Option is a toggle button of a selector group
type Option struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// MetricChart is the system metrics chart
type MetricChart struct {
	Style   ChartStyle    `json:"style"`
	Metric  Metric        `json:"metric"`
	Label   string        `json:"label"`
	Series  []SeriesPoint `json:"series"`
	Styles  []Option      `json:"styles"`
	Metrics []Option      `json:"metrics"`
}

// PerformanceLine describes one line of the performance chart
type PerformanceLine struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// PerformanceChart is the real-time performance chart
type PerformanceChart struct {
	Range  TimeRange          `json:"range"`
	Ranges []Option           `json:"ranges"`
	Points []PerformancePoint `json:"points"`
	Lines  []PerformanceLine  `json:"lines"`
}

// AuditLogRow is an audit entry with its badge
type AuditLogRow struct {
	AuditLogEntry
	BadgeVariant string `json:"badge_variant"`
}

// Snapshot is the read-only view model handed to the renderer after each transition
type Snapshot struct {
	State        ViewState        `json:"state"`
	Sections     []SectionTab     `json:"sections"`
	Notification *Notification    `json:"notification"`
	Connections  []ConnectionCard `json:"connections"`
	Queries      []QueryRow       `json:"queries"`
	Metrics      MetricChart      `json:"metrics"`
	Performance  PerformanceChart `json:"performance"`
	AuditLogs    []AuditLogRow    `json:"audit_logs"`
}

var performanceLines = []PerformanceLine{
	{Key: "cpu", Label: "CPU %", Color: "#8884d8"},
	{Key: "memory", Label: "Memory %", Color: "#82ca9d"},
	{Key: "latency", Label: "Latency (ms)", Color: "#ffc658"},
}

// BuildSnapshot derives the full view model from the catalog and a state
func BuildSnapshot(catalog *Catalog, state ViewState) Snapshot {
	snap := Snapshot{
		State:       state,
		Sections:    sectionTabs(state.ActiveSection),
		Connections: connectionCards(catalog, state),
		Queries:     QueryRows(catalog),
		Metrics:     BuildMetricChart(catalog.ChartData(), state.ChartStyle, state.SelectedMetric),
		Performance: BuildPerformanceChart(catalog.Performance(), state.SelectedTimeRange),
		AuditLogs:   AuditLogRows(catalog.AuditLogs()),
	}

	if state.NotificationVisible {
		n := &Notification{Message: NotificationMessage}
		if id, ok := state.Selected(); ok {
			n.ConnectionID = id
			if conn, found := catalog.Connection(id); found {
				n.ConnectionName = conn.Name
			}
		}
		snap.Notification = n
	}
	return snap
}

func sectionTabs(active Section) []SectionTab {
	tabs := make([]SectionTab, 0, len(Sections))
	for _, s := range Sections {
		tabs = append(tabs, SectionTab{Key: s, Label: TitleCase(string(s)), Active: s == active})
	}
	return tabs
}

func connectionCards(catalog *Catalog, state ViewState) []ConnectionCard {
	selectedID, hasSelection := state.Selected()
	conns := catalog.Connections()
	cards := make([]ConnectionCard, 0, len(conns))
	for _, conn := range conns {
		card := NewConnectionCard(conn)
		card.Selected = hasSelection && conn.ID == selectedID
		cards = append(cards, card)
	}
	return cards
}

// NewConnectionCard derives the card of a single connection
func NewConnectionCard(conn Connection) ConnectionCard {
	badge := BadgeDefault
	if conn.Status != StatusConnected {
		badge = BadgeDestructive
	}
	return ConnectionCard{
		Connection:       conn,
		ConnectionString: conn.ConnectionString(),
		Latency:          formatNumber(conn.Health.Latency.Value) + conn.Health.Latency.Unit,
		BadgeVariant:     badge,
		MemoryUsage:      newUsageBar("Memory Usage", conn.Health.Memory),
		StorageUsage:     newUsageBar("Storage Usage", conn.Health.Storage),
		UserSegments:     UserDistributionSegments(conn.Users),
	}
}

func newUsageBar(label string, c Capacity) UsageBar {
	f := UsageFraction(c.Used, c.Total)
	bar := UsageBar{
		Label:    label,
		Used:     c.Used,
		Total:    c.Total,
		Unit:     c.Unit,
		Fraction: f,
		Percent:  f * 100,
	}
	bar.Text = bar.String()
	return bar
}

// QueryRows joins every query with the name of its connection
func QueryRows(catalog *Catalog) []QueryRow {
	queries := catalog.Queries()
	rows := make([]QueryRow, 0, len(queries))
	for _, q := range queries {
		row := QueryRow{Query: q, LatencyBadge: "Avg. Latency: " + q.AvgLatency}
		if conn, ok := catalog.QueryConnection(q); ok {
			row.Connection = conn.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildMetricChart derives the system metrics chart for a style and metric
func BuildMetricChart(points []ChartPoint, style ChartStyle, metric Metric) MetricChart {
	chart := MetricChart{
		Style:  style,
		Metric: metric,
		Label:  TitleCase(string(metric)),
		Series: SeriesForMetric(points, metric),
	}
	for _, s := range ChartStyles {
		chart.Styles = append(chart.Styles, Option{Key: string(s), Label: TitleCase(string(s)), Selected: s == style})
	}
	for _, m := range Metrics {
		chart.Metrics = append(chart.Metrics, Option{Key: string(m), Label: TitleCase(string(m)), Selected: m == metric})
	}
	return chart
}

// BuildPerformanceChart derives the performance chart for a time range
func BuildPerformanceChart(points []PerformancePoint, r TimeRange) PerformanceChart {
	chart := PerformanceChart{
		Range:  r,
		Points: PerformanceWindow(points, r),
		Lines:  slices.Clone(performanceLines),
	}
	for _, tr := range TimeRanges {
		chart.Ranges = append(chart.Ranges, Option{Key: string(tr), Label: string(tr), Selected: tr == r})
	}
	return chart
}

// AuditLogRows attaches badge variants to audit entries
func AuditLogRows(entries []AuditLogEntry) []AuditLogRow {
	rows := make([]AuditLogRow, 0, len(entries))
	for _, e := range entries {
		badge := BadgeDefault
		if e.Status != AuditSuccess {
			badge = BadgeDestructive
		}
		rows = append(rows, AuditLogRow{AuditLogEntry: e, BadgeVariant: badge})
	}
	return rows
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders the used and total capacity with its unit
func (u UsageBar) String() string {
	return fmt.Sprintf("%s/%s %s", formatNumber(u.Used), formatNumber(u.Total), u.Unit)
}
