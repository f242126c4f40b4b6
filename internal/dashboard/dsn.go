package dashboard

import (
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

var defaultPorts = map[string]int{
	"mysql":    3306,
	"mariadb":  3306,
	"postgres": 5432,
	"mongodb":  27017,
}

// Address returns host:port, using the default port of the backend type when none is set
func (c Connection) Address() string {
	port := c.Port
	if port == 0 {
		port = defaultPorts[c.Type]
	}
	if port == 0 {
		return c.Host
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// ConnectionString renders a display-only connection string without credentials.
// Nothing is dialed.
func (c Connection) ConnectionString() string {
	switch c.Type {
	case "mysql", "mariadb":
		cfg := mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = c.Address()
		cfg.DBName = c.Database
		return cfg.FormatDSN()
	default:
		u := url.URL{
			Scheme: c.Type,
			Host:   c.Address(),
			Path:   "/" + c.Database,
		}
		return u.String()
	}
}
