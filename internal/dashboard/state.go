package dashboard

// ViewState is the snapshot of user selections driving rendering.
// It is a value: every transition returns a new ViewState and never
// modifies the one it was given.
type ViewState struct {
	ActiveSection       Section    `json:"active_section"`
	ChartStyle          ChartStyle `json:"chart_style"`
	SelectedMetric      Metric     `json:"selected_metric"`
	SelectedTimeRange   TimeRange  `json:"selected_time_range"`
	NotificationVisible bool       `json:"notification_visible"`

	// SelectedConnection is only meaningful when ConnectionSelected is set
	SelectedConnection int  `json:"selected_connection"`
	ConnectionSelected bool `json:"connection_selected"`

	// NotificationSeq increases on every connection selection; a pending
	// hide only applies to the sequence number it was scheduled for
	NotificationSeq uint64 `json:"notification_seq"`
}

// DefaultViewState returns the selections shown when the dashboard opens
func DefaultViewState() ViewState {
	return ViewState{
		ActiveSection:     SectionConnections,
		ChartStyle:        ChartStyleLine,
		SelectedMetric:    MetricUsers,
		SelectedTimeRange: TimeRange1h,
	}
}

// Selected returns the selected connection ID, if any
func (s ViewState) Selected() (int, bool) {
	return s.SelectedConnection, s.ConnectionSelected
}

// Event is a user interaction or deferred transition applied by Reduce
type Event interface {
	// Name identifies the event kind in logs and metrics
	Name() string
}

// SelectSection switches the active tab
type SelectSection struct{ Section Section }

// SelectChartStyle switches between line and bar charts
type SelectChartStyle struct{ Style ChartStyle }

// SelectMetric picks the series drawn on the metrics chart
type SelectMetric struct{ Metric Metric }

// SelectTimeRange picks the window of the performance chart
type SelectTimeRange struct{ Range TimeRange }

// SelectConnection marks a connection card as clicked and shows the notification
type SelectConnection struct{ ConnectionID int }

// HideNotification is the deferred transition scheduled by SelectConnection
type HideNotification struct{ Seq uint64 }

func (SelectSection) Name() string    { return "select_section" }
func (SelectChartStyle) Name() string { return "select_chart_style" }
func (SelectMetric) Name() string     { return "select_metric" }
func (SelectTimeRange) Name() string  { return "select_time_range" }
func (SelectConnection) Name() string { return "select_connection" }
func (HideNotification) Name() string { return "hide_notification" }

// Effect tells the host which side effect a transition requested
type Effect struct {
	// ScheduleHide asks for HideNotification{Seq} to be applied after the
	// notification delay, replacing any pending one
	ScheduleHide bool
	Seq          uint64
}

// Reduce applies an event to a state. It is pure: the same inputs always
// give the same outputs and the input state is left untouched.
func Reduce(state ViewState, event Event) (ViewState, Effect) {
	switch ev := event.(type) {
	case SelectSection:
		state.ActiveSection = ev.Section
	case SelectChartStyle:
		state.ChartStyle = ev.Style
	case SelectMetric:
		state.SelectedMetric = ev.Metric
	case SelectTimeRange:
		state.SelectedTimeRange = ev.Range
	case SelectConnection:
		state.SelectedConnection = ev.ConnectionID
		state.ConnectionSelected = true
		state.NotificationVisible = true
		state.NotificationSeq++
		return state, Effect{ScheduleHide: true, Seq: state.NotificationSeq}
	case HideNotification:
		if ev.Seq == state.NotificationSeq {
			state.NotificationVisible = false
		}
	}
	return state, Effect{}
}
