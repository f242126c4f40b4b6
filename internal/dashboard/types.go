package dashboard

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSelection is returned when a selector value is outside its closed domain
var ErrInvalidSelection = errors.New("invalid selection")

// Section identifies a dashboard tab
type Section string

const (
	SectionConnections    Section = "connections"
	SectionQueries        Section = "queries"
	SectionVisualizations Section = "visualizations"
	SectionSettings       Section = "settings"
)

// Sections lists the tabs in display order
var Sections = []Section{SectionConnections, SectionQueries, SectionVisualizations, SectionSettings}

// ChartStyle selects how the metric chart is drawn
type ChartStyle string

const (
	ChartStyleLine ChartStyle = "line"
	ChartStyleBar  ChartStyle = "bar"
)

// ChartStyles lists the available chart styles in display order
var ChartStyles = []ChartStyle{ChartStyleLine, ChartStyleBar}

// Metric names a numeric field of ChartPoint
type Metric string

const (
	MetricUsers   Metric = "users"
	MetricQueries Metric = "queries"
	MetricLatency Metric = "latency"
	MetricStorage Metric = "storage"
	MetricMemory  Metric = "memory"
)

// Metrics lists the selectable metrics in display order
var Metrics = []Metric{MetricUsers, MetricQueries, MetricLatency, MetricStorage, MetricMemory}

// TimeRange is the window of the real-time performance chart
type TimeRange string

const (
	TimeRange1h  TimeRange = "1h"
	TimeRange6h  TimeRange = "6h"
	TimeRange24h TimeRange = "24h"
)

// TimeRanges lists the selectable ranges in display order
var TimeRanges = []TimeRange{TimeRange1h, TimeRange6h, TimeRange24h}

// Duration returns the length of the range
func (r TimeRange) Duration() time.Duration {
	switch r {
	case TimeRange6h:
		return 6 * time.Hour
	case TimeRange24h:
		return 24 * time.Hour
	default:
		return time.Hour
	}
}

// ConnectionStatus is the connectivity state of a database connection
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusError        ConnectionStatus = "error"
)

// AuditStatus is the outcome recorded in an audit log entry
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailed  AuditStatus = "FAILED"
)

// ParseSection converts a tab name into a Section
func ParseSection(s string) (Section, error) {
	return parseEnum(s, Sections, "section")
}

// ParseChartStyle converts a style name into a ChartStyle
func ParseChartStyle(s string) (ChartStyle, error) {
	return parseEnum(s, ChartStyles, "chart style")
}

// ParseMetric converts a metric key into a Metric
func ParseMetric(s string) (Metric, error) {
	return parseEnum(s, Metrics, "metric")
}

// ParseTimeRange converts a range label into a TimeRange
func ParseTimeRange(s string) (TimeRange, error) {
	return parseEnum(s, TimeRanges, "time range")
}

func parseEnum[T ~string](s string, domain []T, kind string) (T, error) {
	for _, v := range domain {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidSelection, kind, s)
}

// Capacity is a used/total pair with its unit
type Capacity struct {
	Used  float64 `yaml:"used" json:"used"`
	Total float64 `yaml:"total" json:"total"`
	Unit  string  `yaml:"unit" json:"unit"`
}

// Measure is a single value with its unit
type Measure struct {
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit" json:"unit"`
}

// ConnectionCount holds the open and maximum client connections of a server
type ConnectionCount struct {
	Current int `yaml:"current" json:"current"`
	Max     int `yaml:"max" json:"max"`
}

// Health holds the health figures shown on a connection card
type Health struct {
	Memory      Capacity        `yaml:"memory" json:"memory"`
	Storage     Capacity        `yaml:"storage" json:"storage"`
	Latency     Measure         `yaml:"latency" json:"latency"`
	Connections ConnectionCount `yaml:"connections" json:"connections"`
	Uptime      string          `yaml:"uptime" json:"uptime"`
}

// UserStats breaks down the accounts of a database.
// Active+Admins+ReadOnly is not required to stay below Total.
type UserStats struct {
	Total    int `yaml:"total" json:"total"`
	Active   int `yaml:"active" json:"active"`
	Admins   int `yaml:"admins" json:"admins"`
	ReadOnly int `yaml:"readonly" json:"readonly"`
}

// Connection is a database connection card
type Connection struct {
	ID       int              `yaml:"id" json:"id"`
	Name     string           `yaml:"name" json:"name"`
	Type     string           `yaml:"type" json:"type"`
	Status   ConnectionStatus `yaml:"status" json:"status"`
	Database string           `yaml:"database" json:"database"`
	Host     string           `yaml:"host" json:"host"`
	Port     int              `yaml:"port,omitempty" json:"port,omitempty"`
	Health   Health           `yaml:"health" json:"health"`
	Users    UserStats        `yaml:"users" json:"users"`
}

// QueryUsage counts executions of a saved query
type QueryUsage struct {
	Daily   int `yaml:"daily" json:"daily"`
	Monthly int `yaml:"monthly" json:"monthly"`
}

// Query is a saved query and its statistics
type Query struct {
	ID           int        `yaml:"id" json:"id"`
	Name         string     `yaml:"name" json:"name"`
	ConnectionID int        `yaml:"connection_id" json:"connection_id"`
	LastRun      string     `yaml:"last_run" json:"last_run"`
	AvgLatency   string     `yaml:"avg_latency" json:"avg_latency"`
	Fields       []string   `yaml:"fields" json:"fields"`
	Dataset      string     `yaml:"dataset" json:"dataset"`
	Usage        QueryUsage `yaml:"usage" json:"usage"`
}

// AuditLogEntry is one line of the audit log
type AuditLogEntry struct {
	Timestamp string      `yaml:"timestamp" json:"timestamp"`
	User      string      `yaml:"user" json:"user"`
	Action    string      `yaml:"action" json:"action"`
	Resource  string      `yaml:"resource" json:"resource"`
	Status    AuditStatus `yaml:"status" json:"status"`
	Details   string      `yaml:"details" json:"details"`
}

// Record returns the fields of the entry in export order
func (e AuditLogEntry) Record() []string {
	return []string{e.Timestamp, e.User, e.Action, e.Resource, string(e.Status), e.Details}
}

// ChartPoint is one monthly bucket of the system metrics chart
type ChartPoint struct {
	Name    string  `yaml:"name" json:"name"`
	Users   float64 `yaml:"users" json:"users"`
	Queries float64 `yaml:"queries" json:"queries"`
	Latency float64 `yaml:"latency" json:"latency"`
	Storage float64 `yaml:"storage" json:"storage"`
	Memory  float64 `yaml:"memory" json:"memory"`
}

// Value returns the field of the point selected by m
func (p ChartPoint) Value(m Metric) float64 {
	switch m {
	case MetricQueries:
		return p.Queries
	case MetricLatency:
		return p.Latency
	case MetricStorage:
		return p.Storage
	case MetricMemory:
		return p.Memory
	default:
		return p.Users
	}
}

// PerformancePoint is one time-of-day sample of the real-time chart
type PerformancePoint struct {
	Time        string  `yaml:"time" json:"time"`
	CPU         float64 `yaml:"cpu" json:"cpu"`
	Memory      float64 `yaml:"memory" json:"memory"`
	Latency     float64 `yaml:"latency" json:"latency"`
	Connections float64 `yaml:"connections" json:"connections"`
}
