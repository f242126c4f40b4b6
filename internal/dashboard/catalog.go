package dashboard

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed sample_data.yaml
var sampleData []byte

// catalogDocument is the YAML layout of a sample data file
type catalogDocument struct {
	Connections []Connection       `yaml:"connections"`
	Queries     []Query            `yaml:"queries"`
	AuditLogs   []AuditLogEntry    `yaml:"audit_logs"`
	ChartData   []ChartPoint       `yaml:"chart_data"`
	Performance []PerformancePoint `yaml:"performance"`
}

// Catalog is the immutable sample data displayed by the dashboard.
// Accessors return copies so callers cannot mutate it.
type Catalog struct {
	connections []Connection
	queries     []Query
	auditLogs   []AuditLogEntry
	chartData   []ChartPoint
	performance []PerformancePoint

	// connection ID -> index into connections
	connectionIndex map[int]int
}

// DefaultCatalog returns the built-in sample data
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(sampleData)
}

// LoadCatalog reads sample data from a YAML file
func LoadCatalog(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample data file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a catalog from a YAML document and validates its references
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sample data: %w", err)
	}

	c := &Catalog{
		connections:     doc.Connections,
		queries:         doc.Queries,
		auditLogs:       doc.AuditLogs,
		chartData:       doc.ChartData,
		performance:     doc.Performance,
		connectionIndex: make(map[int]int, len(doc.Connections)),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index() error {
	for i, conn := range c.connections {
		if _, dup := c.connectionIndex[conn.ID]; dup {
			return fmt.Errorf("duplicate connection id %d", conn.ID)
		}
		switch conn.Status {
		case StatusConnected, StatusDisconnected, StatusError:
		default:
			return fmt.Errorf("connection %d: unknown status %q", conn.ID, conn.Status)
		}
		c.connectionIndex[conn.ID] = i
	}

	for _, q := range c.queries {
		if _, ok := c.connectionIndex[q.ConnectionID]; !ok {
			return fmt.Errorf("query %d (%s) references unknown connection %d", q.ID, q.Name, q.ConnectionID)
		}
	}

	for i, entry := range c.auditLogs {
		if entry.Status != AuditSuccess && entry.Status != AuditFailed {
			return fmt.Errorf("audit log entry %d: unknown status %q", i, entry.Status)
		}
	}
	return nil
}

// Connections returns all connections in display order
func (c *Catalog) Connections() []Connection {
	return slices.Clone(c.connections)
}

// Connection looks up a connection by its identifier
func (c *Catalog) Connection(id int) (Connection, bool) {
	i, ok := c.connectionIndex[id]
	if !ok {
		return Connection{}, false
	}
	return c.connections[i], true
}

// Queries returns all saved queries in display order
func (c *Catalog) Queries() []Query {
	out := slices.Clone(c.queries)
	for i := range out {
		out[i].Fields = slices.Clone(out[i].Fields)
	}
	return out
}

// QueryConnection resolves the connection a query runs against
func (c *Catalog) QueryConnection(q Query) (Connection, bool) {
	return c.Connection(q.ConnectionID)
}

// AuditLogs returns the audit log, newest first as recorded
func (c *Catalog) AuditLogs() []AuditLogEntry {
	return slices.Clone(c.auditLogs)
}

// ChartData returns the monthly metric buckets
func (c *Catalog) ChartData() []ChartPoint {
	return slices.Clone(c.chartData)
}

// Performance returns the real-time performance samples
func (c *Catalog) Performance() []PerformancePoint {
	return slices.Clone(c.performance)
}
