package tracker

import (
	"context"
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-chart/schema"
)

var ErrEmptyLocationID = fmt.Errorf("empty location id")

// detailSource lists the locations without timelines and serves a single
// location's timelines on request
type detailSource struct {
	*fetcher
}

func (s *detailSource) FetchLocations(ctx context.Context) ([]schema.LocationRecord, error) {
	data, err := s.get(ctx, "/locations", nil)
	if nil != err {
		return nil, err
	}

	records, err := decodeLocations(data)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode locations json")
		return nil, &NetworkError{URL: s.url("/locations", nil), Err: err}
	}
	return records, nil
}

func (s *detailSource) FetchLocation(ctx context.Context, id string) (schema.LocationRecord, error) {
	if id == "" {
		return schema.LocationRecord{}, ErrEmptyLocationID
	}

	path := "/locations/" + url.PathEscape(id)
	data, err := s.get(ctx, path, withTimelines)
	if nil != err {
		return schema.LocationRecord{}, err
	}

	record, err := decodeLocation(data)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "id": id, "error": err}).Error("decode location json")
		return schema.LocationRecord{}, &NetworkError{URL: s.url(path, withTimelines), Err: err}
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "id": id, "country": record.CountryName}).Debug("location detail")
	return record, nil
}
