package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/covid-chart/chart"
	"github.com/bitmark-inc/covid-chart/external/tracker"
	"github.com/bitmark-inc/covid-chart/schema"
)

const logPrefix = "dashboard"

type State int

const (
	StateIdle State = iota
	StateFetching
	StateReady
	StateRendering
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateRendering:
		return "rendering"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrNotReady      = fmt.Errorf("dashboard is not ready")
	ErrAlreadyLoaded = fmt.Errorf("dashboard has been loaded")
)

// Cycle owns the fetched records and runs one update cycle at a time:
// extract, derive extents and render. Records are fetched once by Load and
// never mutated afterwards.
type Cycle struct {
	source    tracker.Source
	detail    tracker.DetailSource
	extractor *chart.Extractor
	scope     tally.Scope
	log       *logrus.Entry

	mu        sync.Mutex
	state     State
	err       error
	records   []schema.LocationRecord
	directory schema.Directory
	slider    Slider
	updated   time.Time
}

type Option func(*Cycle)

// WithDetailSource fetches missing timelines of the selected countries
// one location at a time.
func WithDetailSource(d tracker.DetailSource) Option {
	return func(c *Cycle) {
		c.detail = d
	}
}

func WithScope(scope tally.Scope) Option {
	return func(c *Cycle) {
		c.scope = scope
	}
}

func New(source tracker.Source, opts ...Option) *Cycle {
	c := &Cycle{
		source: source,
		scope:  tally.NoopScope,
		log:    logrus.WithField("prefix", logPrefix),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.extractor = chart.NewExtractor(c.scope)
	return c
}

// Load fetches the records. A failure is terminal for the cycle.
func (c *Cycle) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrAlreadyLoaded
	}
	c.state = StateFetching
	c.mu.Unlock()

	records, err := c.source.FetchLocations(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateFailed
		c.err = err
		c.log.WithError(err).Error("load locations")
		return err
	}

	c.records = records
	c.directory = schema.NewDirectory(records)
	c.updated = tracker.LastUpdated(records)
	c.slider = NewSlider(c.updated)
	c.state = StateReady

	c.log.WithFields(logrus.Fields{
		"locations":    len(records),
		"countries":    c.directory.Len(),
		"last_updated": c.updated,
	}).Info("dashboard ready")
	return nil
}

// Update runs one cycle with the selected controls against the cached
// records. A nil renderer only builds the dataset. A missing country stops the
// cycle before anything is rendered.
func (c *Cycle) Update(ctx context.Context, ctrl Controls, r chart.Renderer) (schema.ChartDataset, schema.Extents, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady {
		return schema.ChartDataset{}, schema.Extents{}, fmt.Errorf("%w: %s", ErrNotReady, c.state)
	}

	maxDate, err := c.slider.MaxDate(ctrl.Slider)
	if err != nil {
		return schema.ChartDataset{}, schema.Extents{}, err
	}

	c.state = StateRendering
	defer func() {
		c.state = StateReady
	}()

	log := c.log.WithFields(logrus.Fields{
		"cycle":    uuid.New().String(),
		"type":     ctrl.Metric,
		"country1": ctrl.CountryA,
		"country2": ctrl.CountryB,
		"max_date": maxDate.Format("2006-01-02"),
	})

	if c.detail != nil {
		if err := c.fetchTimelines(ctx, ctrl); err != nil {
			log.WithError(err).Error("fetch location timelines")
			return schema.ChartDataset{}, schema.Extents{}, err
		}
	}

	ds, err := c.extractor.Extract(c.records, ctrl.Metric, ctrl.CountryA, ctrl.CountryB, maxDate)
	if err != nil {
		c.scope.Counter("render.country_not_found").Inc(1)
		log.WithError(err).Warn("extract chart data")
		return schema.ChartDataset{}, schema.Extents{}, err
	}
	ext := chart.DeriveExtents(ds)

	if r != nil {
		if err := r.Render(ds, ext); err != nil {
			c.scope.Counter("render.failure").Inc(1)
			log.WithError(err).Error("render chart")
			return schema.ChartDataset{}, schema.Extents{}, err
		}
	}

	c.scope.Counter("render.success").Inc(1)
	log.Debug("chart updated")
	return ds, ext, nil
}

// fetchTimelines fills in the selected countries that were listed without the
// selected metric's timeline. The record set is replaced, not modified.
func (c *Cycle) fetchTimelines(ctx context.Context, ctrl Controls) error {
	type missing struct {
		index int
		id    string
	}

	wanted := []missing{}
	for _, country := range []string{ctrl.CountryA, ctrl.CountryB} {
		id, ok := c.directory.Lookup(country)
		if !ok {
			continue
		}
		for i, r := range c.records {
			if r.IsCountry() && r.CountryName == country && !r.HasTimeline(ctrl.Metric) {
				if len(wanted) == 0 || wanted[0].index != i {
					wanted = append(wanted, missing{index: i, id: id})
				}
				break
			}
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	fetched := make([]schema.LocationRecord, len(wanted))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range wanted {
		i, m := i, m
		g.Go(func() error {
			record, err := c.detail.FetchLocation(gctx, m.id)
			if err != nil {
				return err
			}
			fetched[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	records := make([]schema.LocationRecord, len(c.records))
	copy(records, c.records)
	for i, m := range wanted {
		record := fetched[i]
		// keep the listed identity, only the timelines are taken over
		listed := records[m.index]
		listed.Timelines = record.Timelines
		if record.LastUpdated.After(listed.LastUpdated) {
			listed.LastUpdated = record.LastUpdated
		}
		records[m.index] = listed
	}
	c.records = records
	return nil
}

func (c *Cycle) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the load failure of a failed cycle
func (c *Cycle) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Cycle) Slider() Slider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slider
}

func (c *Cycle) LastUpdated() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updated
}

// Countries lists the selectable countries of the loaded records
func (c *Cycle) Countries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Countries(c.records)
}

// Defaults returns the initial controls of the loaded records
func (c *Cycle) Defaults() Controls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return DefaultControls(c.slider)
}
