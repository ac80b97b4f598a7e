package tracker

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-chart/schema"
)

type allSource struct {
	*fetcher
}

func (s *allSource) FetchLocations(ctx context.Context) ([]schema.LocationRecord, error) {
	data, err := s.get(ctx, "/all", nil)
	if nil != err {
		return nil, err
	}

	records, err := decodeAll(data)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode all json")
		return nil, &NetworkError{URL: s.url("/all", nil), Err: err}
	}
	return records, nil
}
