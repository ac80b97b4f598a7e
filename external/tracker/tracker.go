package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/covid-chart/schema"
)

const (
	logPrefix = "tracker"

	defaultAllBaseURL       = "https://coronavirus-tracker-api.herokuapp.com"
	defaultLocationsBaseURL = "https://coronavirus-tracker-api.herokuapp.com/v2"
	defaultTimeout          = 15 * time.Second
	defaultUserAgent        = "covid-chart/0.1"
)

// Variant selects the endpoint shape of the remote tracker API
type Variant string

const (
	// VariantAll reads `/all`, one location list per metric
	VariantAll Variant = "all"
	// VariantLocations reads `/locations?timelines=1`, timelines inline
	VariantLocations Variant = "locations"
	// VariantDetail reads the plain `/locations` list and fetches timelines
	// per country from `/locations/{id}`
	VariantDetail Variant = "detail"
)

var (
	ErrUnknownVariant = fmt.Errorf("unknown tracker variant")
	ErrEmptyDataset   = fmt.Errorf("dataset has no locations")
)

// Source - interface to fetch location records from a tracker
type Source interface {
	FetchLocations(ctx context.Context) ([]schema.LocationRecord, error)
}

// DetailSource - a source that serves the timelines of a single location
type DetailSource interface {
	FetchLocation(ctx context.Context, id string) (schema.LocationRecord, error)
}

// Loader - interface to load the bundled snapshot
type Loader interface {
	LoadFallback(ctx context.Context) ([]schema.LocationRecord, error)
}

// NetworkError is returned when the remote endpoint can not be reached, answers
// with a non-success status or returns a body that can not be decoded.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("tracker: %s: unexpected response status: %d", e.URL, e.Status)
	}
	return fmt.Sprintf("tracker: %s: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DataUnavailableError is returned when neither the remote source nor the
// fallback snapshot produced any data.
type DataUnavailableError struct {
	Remote   error
	Fallback error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("tracker: no dataset available: remote: %s; fallback: %s", e.Remote, e.Fallback)
}

func (e *DataUnavailableError) Unwrap() []error {
	return []error{e.Remote, e.Fallback}
}

// IsNetworkError reports whether err carries a NetworkError
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ParseVariant converts a configuration value into a Variant
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VariantAll, nil
	case VariantAll, VariantLocations, VariantDetail:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

type Config struct {
	Variant   Variant
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
}

func (c Config) withDefaults() Config {
	if c.Variant == "" {
		c.Variant = VariantAll
	}
	if c.BaseURL == "" {
		if c.Variant == VariantAll {
			c.BaseURL = defaultAllBaseURL
		} else {
			c.BaseURL = defaultLocationsBaseURL
		}
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: c.Timeout}
	}
	return c
}

// New returns the remote source of the configured variant
func New(cfg Config) (Source, error) {
	cfg = cfg.withDefaults()
	f := &fetcher{
		client:    cfg.Client,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
	}

	switch cfg.Variant {
	case VariantAll:
		return &allSource{fetcher: f}, nil
	case VariantLocations:
		return &locationsSource{fetcher: f}, nil
	case VariantDetail:
		return &detailSource{fetcher: f}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, cfg.Variant)
	}
}

// LastUpdated returns the most recent update time among the records
func LastUpdated(records []schema.LocationRecord) time.Time {
	var latest time.Time
	for _, r := range records {
		if r.LastUpdated.After(latest) {
			latest = r.LastUpdated
		}
	}
	return latest
}
