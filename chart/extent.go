package chart

import (
	"time"

	"github.com/bitmark-inc/covid-chart/schema"
)

// StartDate is the first day covered by the tracker timelines
var StartDate = time.Date(2020, time.January, 22, 0, 0, 0, 0, time.UTC)

// DeriveExtents returns the axis domains of a dataset. The date domain follows
// the first series only; the second series is drawn against it as is.
func DeriveExtents(ds schema.ChartDataset) schema.Extents {
	ext := schema.Extents{}
	if ds.MaxCount != nil {
		ext.ValueDomain[1] = *ds.MaxCount
	}

	points := ds.Series[0].Points
	if len(points) == 0 {
		ext.Empty = true
		ext.DateDomain = [2]time.Time{StartDate, ds.MaxDate}
		return ext
	}

	ext.DateDomain = [2]time.Time{points[0].Date, points[len(points)-1].Date}
	return ext
}
