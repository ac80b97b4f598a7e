package schema

import "time"

type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Count uint64    `json:"count"`
}

type CountrySeries struct {
	Country string        `json:"country"`
	Points  []SeriesPoint `json:"points"`
}

// Last returns the latest point of the series.
func (s CountrySeries) Last() (SeriesPoint, bool) {
	if len(s.Points) == 0 {
		return SeriesPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// ChartDataset is built fresh for each render and never mutated afterwards.
// MaxCount is nil when neither series retained a point.
type ChartDataset struct {
	Metric   MetricType       `json:"type"`
	MaxDate  time.Time        `json:"max_date"`
	MaxCount *uint64          `json:"max_count"`
	Series   [2]CountrySeries `json:"series"`
}

type Extents struct {
	DateDomain  [2]time.Time `json:"date_domain"`
	ValueDomain [2]uint64    `json:"value_domain"`
	Empty       bool         `json:"empty"`
}
