package tracker

import (
	"context"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-chart/schema"
)

var withTimelines = url.Values{"timelines": []string{"1"}}

type locationsSource struct {
	*fetcher
}

func (s *locationsSource) FetchLocations(ctx context.Context) ([]schema.LocationRecord, error) {
	data, err := s.get(ctx, "/locations", withTimelines)
	if nil != err {
		return nil, err
	}

	records, err := decodeLocations(data)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode locations json")
		return nil, &NetworkError{URL: s.url("/locations", withTimelines), Err: err}
	}
	return records, nil
}
