package schema

import (
	"fmt"
	"strings"
)

type MetricType string

const (
	Confirmed MetricType = "confirmed"
	Deaths    MetricType = "deaths"
)

var ErrUnknownMetric = fmt.Errorf("unknown metric type")

// Metrics lists the selectable metric types in selector order
var Metrics = []MetricType{Confirmed, Deaths}

// ParseMetricType accepts the metric selector value in any letter case.
// An empty value selects Confirmed.
func ParseMetricType(s string) (MetricType, error) {
	switch MetricType(strings.ToLower(strings.TrimSpace(s))) {
	case "", Confirmed:
		return Confirmed, nil
	case Deaths:
		return Deaths, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

func (m MetricType) String() string {
	return string(m)
}
