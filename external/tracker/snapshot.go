package tracker

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

// FetchSnapshot downloads every location with its timelines in the shape of
// the bundled fallback dataset. A base URL configured for the `all` variant
// is read as the API root and its `/v2` endpoints are used. The body is
// returned as served once it decodes into at least one location.
func FetchSnapshot(ctx context.Context, cfg Config) ([]byte, int, error) {
	if cfg.Variant == VariantAll && cfg.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/") + "/v2"
	}
	cfg.Variant = VariantLocations
	cfg = cfg.withDefaults()

	f := &fetcher{
		client:    cfg.Client,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
	}

	data, err := f.get(ctx, "/locations", withTimelines)
	if nil != err {
		return nil, 0, err
	}

	records, err := decodeLocations(data)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode snapshot json")
		return nil, 0, err
	}
	return data, len(records), nil
}
