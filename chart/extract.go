package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-chart/schema"
)

const logPrefix = "chart"

// known timestamp formats of the tracker timelines
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"1/2/06",
}

var ErrMissingTimeline = fmt.Errorf("no timeline for metric")

// CountryNotFoundError means a selected country has no country level record,
// or that record has no timeline for the selected metric.
type CountryNotFoundError struct {
	Country string
	Metric  schema.MetricType
	Err     error
}

func (e *CountryNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("country %q: %s %s", e.Country, e.Err, e.Metric)
	}
	return fmt.Sprintf("country %q not found", e.Country)
}

func (e *CountryNotFoundError) Unwrap() error {
	return e.Err
}

// Extractor reshapes location records into the dataset of one chart
type Extractor struct {
	log       *logrus.Entry
	malformed tally.Counter
}

func NewExtractor(scope tally.Scope) *Extractor {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Extractor{
		log:       logrus.WithField("prefix", logPrefix),
		malformed: scope.SubScope("extract").Counter("malformed_count"),
	}
}

var defaultExtractor = NewExtractor(nil)

// Extract builds the dataset of countryA and countryB with the package level
// extractor.
func Extract(records []schema.LocationRecord, metric schema.MetricType, countryA, countryB string, maxDate time.Time) (schema.ChartDataset, error) {
	return defaultExtractor.Extract(records, metric, countryA, countryB, maxDate)
}

// Extract returns both countries' points of the metric dated strictly before
// maxDate, in ascending date order. MaxCount is the largest retained count of
// either series and stays nil when nothing is retained.
func (x *Extractor) Extract(records []schema.LocationRecord, metric schema.MetricType, countryA, countryB string, maxDate time.Time) (schema.ChartDataset, error) {
	ds := schema.ChartDataset{
		Metric:  metric,
		MaxDate: maxDate,
	}

	for i, country := range [2]string{countryA, countryB} {
		record, ok := findCountry(records, country)
		if !ok {
			return schema.ChartDataset{}, &CountryNotFoundError{Country: country, Metric: metric}
		}

		timeline, ok := record.Timelines[metric]
		if !ok {
			return schema.ChartDataset{}, &CountryNotFoundError{Country: country, Metric: metric, Err: ErrMissingTimeline}
		}

		ds.Series[i] = schema.CountrySeries{
			Country: country,
			Points:  x.points(country, timeline, maxDate, &ds.MaxCount),
		}
	}

	return ds, nil
}

func findCountry(records []schema.LocationRecord, country string) (schema.LocationRecord, bool) {
	for _, r := range records {
		if r.IsCountry() && r.CountryName == country {
			return r, true
		}
	}
	return schema.LocationRecord{}, false
}

func (x *Extractor) points(country string, timeline schema.TimeSeries, maxDate time.Time, maxCount **uint64) []schema.SeriesPoint {
	points := make([]schema.SeriesPoint, 0, len(timeline))

	for key, raw := range timeline {
		date, ok := ParseDate(key)
		if !ok {
			x.log.WithFields(logrus.Fields{"country": country, "timestamp": key}).Warn("unknown timestamp format")
			continue
		}
		if !date.Before(maxDate) {
			continue
		}

		count, ok := parseCount(raw)
		if !ok {
			x.malformed.Inc(1)
			x.log.WithFields(logrus.Fields{"country": country, "timestamp": key, "value": string(raw)}).Warn("malformed count, use 0")
		}

		if *maxCount == nil || **maxCount < count {
			c := count
			*maxCount = &c
		}
		points = append(points, schema.SeriesPoint{Date: date, Count: count})
	}

	// ties on a date are ordered by count
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Date.Equal(points[j].Date) {
			return points[i].Count < points[j].Count
		}
		return points[i].Date.Before(points[j].Date)
	})

	// two keys of the same day keep the larger count
	unique := points[:0]
	for _, p := range points {
		if n := len(unique); n > 0 && unique[n-1].Date.Equal(p.Date) {
			unique[n-1] = p
			continue
		}
		unique = append(unique, p)
	}
	return unique
}

// ParseDate parses a timeline key into a UTC calendar date
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseCount coerces a raw timeline value into a non-negative integer. Values
// that are not a non-negative number are reported as malformed and read as 0.
func parseCount(raw json.RawMessage) (uint64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(math.Trunc(f)), true
}
