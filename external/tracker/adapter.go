package tracker

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-chart/schema"
)

// Adapter fetches from the remote source once and falls back to the bundled
// snapshot when the remote fails. There is no retry.
type Adapter struct {
	remote   Source
	fallback Loader
	scope    tally.Scope
}

func NewAdapter(remote Source, fallback Loader, scope tally.Scope) *Adapter {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Adapter{
		remote:   remote,
		fallback: fallback,
		scope:    scope.SubScope("fetch"),
	}
}

func (a *Adapter) FetchLocations(ctx context.Context) ([]schema.LocationRecord, error) {
	records, err := a.remote.FetchLocations(ctx)
	if err == nil {
		a.scope.Counter("remote_success").Inc(1)
		log.WithFields(log.Fields{"prefix": logPrefix, "locations": len(records)}).Info("locations from tracker")
		return records, nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	a.scope.Counter("remote_failure").Inc(1)
	log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("tracker locations can not be fetched, use fallback dataset")

	records, ferr := a.LoadFallback(ctx)
	if ferr != nil {
		a.scope.Counter("unavailable").Inc(1)
		log.WithFields(log.Fields{"prefix": logPrefix, "error": ferr}).Error("no dataset available")
		return nil, &DataUnavailableError{Remote: err, Fallback: ferr}
	}
	return records, nil
}

func (a *Adapter) LoadFallback(ctx context.Context) ([]schema.LocationRecord, error) {
	if a.fallback == nil {
		return nil, errors.New("no fallback dataset configured")
	}

	records, err := a.fallback.LoadFallback(ctx)
	if err != nil {
		return nil, err
	}

	a.scope.Counter("fallback_success").Inc(1)
	log.WithFields(log.Fields{"prefix": logPrefix, "locations": len(records)}).Info("locations from fallback dataset")
	return records, nil
}
