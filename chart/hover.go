package chart

import (
	"sort"
	"time"

	"github.com/bitmark-inc/covid-chart/schema"
)

type Tooltip struct {
	Country string    `json:"country"`
	Date    time.Time `json:"date"`
	Count   uint64    `json:"count"`
}

type HoverEvent struct {
	At       time.Time `json:"at"`
	Tooltips []Tooltip `json:"tooltips"`
}

// Tooltips returns, for each non empty series, the first point dated at or
// after the hovered date. A date past the last point selects the last point.
func Tooltips(ds schema.ChartDataset, at time.Time) []Tooltip {
	tooltips := []Tooltip{}
	for _, s := range ds.Series {
		n := len(s.Points)
		if n == 0 {
			continue
		}

		i := sort.Search(n, func(i int) bool {
			return !s.Points[i].Date.Before(at)
		})
		if i == n {
			i = n - 1
		}

		p := s.Points[i]
		tooltips = append(tooltips, Tooltip{
			Country: s.Country,
			Date:    p.Date,
			Count:   p.Count,
		})
	}
	return tooltips
}
