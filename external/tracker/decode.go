package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-chart/schema"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type decodeFunc func(data []byte) ([]schema.LocationRecord, error)

func decoderFor(v Variant) (decodeFunc, error) {
	switch v {
	case VariantAll:
		return decodeAll, nil
	case VariantLocations, VariantDetail:
		return decodeLocations, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// `/all` groups the location list by metric
type allCategory struct {
	LastUpdated string        `json:"last_updated"`
	Locations   []allLocation `json:"locations"`
}

type allLocation struct {
	Country     string            `json:"country"`
	CountryCode string            `json:"country_code"`
	Province    string            `json:"province"`
	History     schema.TimeSeries `json:"history"`
}

type allPayload struct {
	Confirmed *allCategory `json:"confirmed"`
	Deaths    *allCategory `json:"deaths"`
}

func decodeAll(data []byte) ([]schema.LocationRecord, error) {
	var p allPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Confirmed == nil && p.Deaths == nil {
		return nil, ErrEmptyDataset
	}

	type key struct{ country, province string }
	index := map[key]int{}
	records := []schema.LocationRecord{}

	merge := func(metric schema.MetricType, c *allCategory) {
		if c == nil {
			return
		}
		updated := parseTimestamp(c.LastUpdated)
		for _, l := range c.Locations {
			k := key{l.Country, l.Province}
			i, ok := index[k]
			if !ok {
				i = len(records)
				index[k] = i
				records = append(records, schema.LocationRecord{
					CountryName: l.Country,
					CountryID:   l.CountryCode,
					Province:    l.Province,
					Timelines:   map[schema.MetricType]schema.TimeSeries{},
				})
			}
			r := &records[i]
			if updated.After(r.LastUpdated) {
				r.LastUpdated = updated
			}
			if l.History != nil {
				r.Timelines[metric] = l.History
			}
		}
	}
	merge(schema.Confirmed, p.Confirmed)
	merge(schema.Deaths, p.Deaths)

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// `/locations` and `/locations/{id}` carry the timelines inline
type timeline struct {
	Latest   json.RawMessage   `json:"latest"`
	Timeline schema.TimeSeries `json:"timeline"`
}

type v2Location struct {
	ID          json.RawMessage     `json:"id"`
	Country     string              `json:"country"`
	CountryCode string              `json:"country_code"`
	Province    string              `json:"province"`
	LastUpdated string              `json:"last_updated"`
	Timelines   map[string]timeline `json:"timelines"`
}

type locationsPayload struct {
	Locations []v2Location `json:"locations"`
}

type locationPayload struct {
	Location *v2Location `json:"location"`
}

func (l v2Location) record() schema.LocationRecord {
	r := schema.LocationRecord{
		CountryName: l.Country,
		CountryID:   l.CountryCode,
		LocationID:  rawString(l.ID),
		Province:    l.Province,
		LastUpdated: parseTimestamp(l.LastUpdated),
	}
	if len(l.Timelines) > 0 {
		r.Timelines = map[schema.MetricType]schema.TimeSeries{}
		for _, m := range schema.Metrics {
			if t, ok := l.Timelines[m.String()]; ok && t.Timeline != nil {
				r.Timelines[m] = t.Timeline
			}
		}
	}
	return r
}

func decodeLocations(data []byte) ([]schema.LocationRecord, error) {
	var p locationsPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if len(p.Locations) == 0 {
		return nil, ErrEmptyDataset
	}

	records := make([]schema.LocationRecord, len(p.Locations))
	for i, l := range p.Locations {
		records[i] = l.record()
	}
	return records, nil
}

func decodeLocation(data []byte) (schema.LocationRecord, error) {
	var p locationPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return schema.LocationRecord{}, err
	}
	if p.Location == nil {
		return schema.LocationRecord{}, ErrEmptyDataset
	}
	return p.Location.record(), nil
}

// rawString turns a JSON string or number into its textual form
func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	log.WithFields(log.Fields{"prefix": logPrefix, "value": s}).Warn("unknown last_updated format")
	return time.Time{}
}
