package dashboard

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/covid-chart/chart"
)

const day = 24 * time.Hour

var ErrSliderOutOfRange = fmt.Errorf("slider value out of range")

// Slider is the date offset control, counted in whole days from the timeline
// start date.
type Slider struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Value int `json:"value"`
}

// DaysSince returns the whole days between from and to, rounded down
func DaysSince(from, to time.Time) int {
	d := to.Sub(from)
	days := int(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}

// NewSlider spans from the start date to lastUpdated and starts at the end
func NewSlider(lastUpdated time.Time) Slider {
	max := DaysSince(chart.StartDate, lastUpdated)
	if max < 0 {
		max = 0
	}
	return Slider{Min: 0, Max: max, Value: max}
}

// MaxDate converts a slider value into the exclusive cutoff date
func (s Slider) MaxDate(value int) (time.Time, error) {
	if value < s.Min || value > s.Max {
		return time.Time{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrSliderOutOfRange, value, s.Min, s.Max)
	}
	return chart.StartDate.AddDate(0, 0, value), nil
}
