package schema

import (
	"encoding/json"
	"time"
)

// TimeSeries maps a source timestamp to its cumulative count. Values are kept
// undecoded so a malformed count reaches the extractor instead of failing the
// whole payload.
type TimeSeries map[string]json.RawMessage

type LocationRecord struct {
	CountryName string                    `json:"country"`
	CountryID   string                    `json:"country_code"`
	LocationID  string                    `json:"id,omitempty"`
	Province    string                    `json:"province,omitempty"`
	LastUpdated time.Time                 `json:"last_updated"`
	Timelines   map[MetricType]TimeSeries `json:"timelines,omitempty"`
}

// IsCountry reports whether the record describes a whole country rather than
// one of its provinces.
func (l LocationRecord) IsCountry() bool {
	return l.Province == ""
}

// HasTimeline reports whether the record carries a timeline for the metric.
func (l LocationRecord) HasTimeline(metric MetricType) bool {
	_, ok := l.Timelines[metric]
	return ok
}

// Directory is a read-only country name to location id lookup.
type Directory struct {
	ids map[string]string
}

// NewDirectory indexes the country level records by name. The first record of
// a name wins.
func NewDirectory(records []LocationRecord) Directory {
	ids := make(map[string]string, len(records))
	for _, r := range records {
		if !r.IsCountry() {
			continue
		}
		if _, ok := ids[r.CountryName]; ok {
			continue
		}
		ids[r.CountryName] = r.LocationID
	}
	return Directory{ids: ids}
}

// Lookup returns the location id of a country.
func (d Directory) Lookup(country string) (string, bool) {
	id, ok := d.ids[country]
	return id, ok
}

func (d Directory) Len() int {
	return len(d.ids)
}
