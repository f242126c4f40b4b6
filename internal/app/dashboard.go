package app

import (
	"fmt"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/config"
)

// LoadCatalog returns the configured sample data, or the built-in set when none is configured
func LoadCatalog(cfg *config.Config) (*dashboard.Catalog, error) {
	if cfg.Dashboard.SampleData == "" {
		catalog, err := dashboard.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in sample data: %w", err)
		}
		return catalog, nil
	}

	catalog, err := dashboard.LoadCatalog(cfg.Dashboard.SampleData)
	if err != nil {
		return nil, fmt.Errorf("failed to load sample data: %w", err)
	}
	return catalog, nil
}

// InitialState builds the ViewState the dashboard opens with
func InitialState(d config.DashboardConfig) (dashboard.ViewState, error) {
	state := dashboard.DefaultViewState()
	var err error

	if d.DefaultSection != "" {
		if state.ActiveSection, err = dashboard.ParseSection(d.DefaultSection); err != nil {
			return state, err
		}
	}
	if d.DefaultChartStyle != "" {
		if state.ChartStyle, err = dashboard.ParseChartStyle(d.DefaultChartStyle); err != nil {
			return state, err
		}
	}
	if d.DefaultMetric != "" {
		if state.SelectedMetric, err = dashboard.ParseMetric(d.DefaultMetric); err != nil {
			return state, err
		}
	}
	if d.DefaultTimeRange != "" {
		if state.SelectedTimeRange, err = dashboard.ParseTimeRange(d.DefaultTimeRange); err != nil {
			return state, err
		}
	}
	return state, nil
}

// NewSession creates a dashboard session from the configuration; it is not started
func NewSession(cfg *config.Config) (*dashboard.Session, error) {
	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	initial, err := InitialState(cfg.Dashboard)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard defaults: %w", err)
	}

	return dashboard.NewSession(catalog, dashboard.Options{
		Initial:           initial,
		NotificationDelay: cfg.Dashboard.NotificationDelay(),
	}), nil
}
