package dashboard

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// UsageFraction returns used/total clamped to [0,1]. A non-positive total yields 0.
func UsageFraction(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	f := used / total
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Segment is one slice of a pie breakdown
type Segment struct {
	Label string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"fill"`
}

// UserDistributionSegments splits user stats into the four pie slices,
// always in the order Active, Inactive, Admins, ReadOnly.
func UserDistributionSegments(users UserStats) []Segment {
	inactive := users.Total - users.Active
	if inactive < 0 {
		inactive = 0
	}
	return []Segment{
		{Label: "Active", Value: users.Active, Color: "#4CAF50"},
		{Label: "Inactive", Value: inactive, Color: "#9E9E9E"},
		{Label: "Admins", Value: users.Admins, Color: "#2196F3"},
		{Label: "ReadOnly", Value: users.ReadOnly, Color: "#FFC107"},
	}
}

// SeriesPoint is one (category, value) pair fed to a chart
type SeriesPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// SeriesForMetric projects one field out of the chart points, keeping their order
func SeriesForMetric(points []ChartPoint, metric Metric) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		series = append(series, SeriesPoint{Category: p.Name, Value: p.Value(metric)})
	}
	return series
}

// TitleCase upper-cases the first character of word and leaves the rest as is
func TitleCase(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// PerformanceWindow keeps the samples that fall within r of the newest sample.
// Samples are in chronological order with "HH:MM" clock times; a clock value
// smaller than its predecessor is taken to be on the following day. Samples
// whose time cannot be parsed are kept.
func PerformanceWindow(points []PerformancePoint, r TimeRange) []PerformancePoint {
	offsets := make([]time.Duration, len(points))
	parsed := make([]bool, len(points))

	var day, prev time.Duration
	var seen bool
	var newest time.Duration
	for i, p := range points {
		clock, err := time.Parse("15:04", p.Time)
		if err != nil {
			continue
		}
		at := time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute
		if seen && at+day < prev {
			day += 24 * time.Hour
		}
		offsets[i] = at + day
		parsed[i] = true
		prev = offsets[i]
		newest = offsets[i]
		seen = true
	}

	window := r.Duration()
	out := make([]PerformancePoint, 0, len(points))
	for i, p := range points {
		if !parsed[i] || newest-offsets[i] <= window {
			out = append(out, p)
		}
	}
	return out
}
