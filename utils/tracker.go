package utils

import (
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-chart/dashboard"
	"github.com/bitmark-inc/covid-chart/external/tracker"
)

// NewTrackerSource builds the configured remote source behind its fallback.
// The detail source is nil unless the remote serves single locations.
func NewTrackerSource(scope tally.Scope) (tracker.Source, tracker.DetailSource, error) {
	variant, err := tracker.ParseVariant(viper.GetString("tracker.variant"))
	if err != nil {
		return nil, nil, err
	}

	remote, err := tracker.New(tracker.Config{
		Variant: variant,
		BaseURL: viper.GetString("tracker.base_url"),
		Timeout: viper.GetDuration("tracker.timeout"),
	})
	if err != nil {
		return nil, nil, err
	}

	adapter := tracker.NewAdapter(remote, tracker.FileLoader{
		Path:    viper.GetString("tracker.fallback"),
		Variant: variant,
	}, scope)

	detail, _ := remote.(tracker.DetailSource)
	return adapter, detail, nil
}

// NewDashboard builds an update cycle on top of the configured tracker
func NewDashboard(scope tally.Scope) (*dashboard.Cycle, error) {
	source, detail, err := NewTrackerSource(scope)
	if err != nil {
		return nil, err
	}

	opts := []dashboard.Option{dashboard.WithScope(scope)}
	if detail != nil {
		opts = append(opts, dashboard.WithDetailSource(detail))
	}
	return dashboard.New(source, opts...), nil
}
