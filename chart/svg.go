package chart

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bitmark-inc/covid-chart/schema"
)

const (
	defaultWidth  = 960
	defaultHeight = 500

	startDateLabel = "start date is Jan. 22, 2020"
)

var seriesColors = [2]drawing.Color{
	{R: 70, G: 130, B: 180, A: 255}, // steelblue
	{R: 138, G: 43, B: 226, A: 255}, // blueviolet
}

// SVGRenderer draws the two series comparison chart as SVG. It keeps the last
// rendered dataset so pointer positions can be resolved to tooltips.
type SVGRenderer struct {
	w      io.Writer
	width  int
	height int
	log    *logrus.Entry

	mu      sync.Mutex
	dataset *schema.ChartDataset
	hovers  []HoverFunc
}

type SVGOption func(*SVGRenderer)

// WithSize overrides the canvas size. Non-positive values keep the default.
func WithSize(width, height int) SVGOption {
	return func(r *SVGRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

func NewSVGRenderer(w io.Writer, opts ...SVGOption) *SVGRenderer {
	r := &SVGRenderer{
		w:      w,
		width:  defaultWidth,
		height: defaultHeight,
		log:    logrus.WithField("prefix", logPrefix),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SVGRenderer) Render(ds schema.ChartDataset, ext schema.Extents) error {
	c := r.Chart(ds, ext)
	if err := c.Render(gochart.SVG, r.w); err != nil {
		r.log.WithError(err).Error("render svg chart")
		return fmt.Errorf("render chart: %w", err)
	}

	r.mu.Lock()
	r.dataset = &ds
	r.mu.Unlock()
	return nil
}

func (r *SVGRenderer) OnHover(fn HoverFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hovers = append(r.hovers, fn)
}

// PointerMove resolves a hovered date against the last rendered dataset and
// notifies the hover callbacks. Nothing happens before the first render.
func (r *SVGRenderer) PointerMove(at time.Time) (HoverEvent, bool) {
	r.mu.Lock()
	ds := r.dataset
	hovers := append([]HoverFunc(nil), r.hovers...)
	r.mu.Unlock()

	if ds == nil {
		return HoverEvent{}, false
	}

	e := HoverEvent{At: at, Tooltips: Tooltips(*ds, at)}
	for _, fn := range hovers {
		fn(e)
	}
	return e, true
}

// Chart builds the go-chart definition of a dataset. Empty series are left
// out; when both are empty a hidden placeholder keeps the axes drawable.
func (r *SVGRenderer) Chart(ds schema.ChartDataset, ext schema.Extents) gochart.Chart {
	minDate, maxDate := ext.DateDomain[0], ext.DateDomain[1]
	if !maxDate.After(minDate) {
		maxDate = minDate.AddDate(0, 0, 1)
	}

	maxCount := float64(ext.ValueDomain[1])
	if maxCount <= 0 {
		maxCount = 1
	}

	series := []gochart.Series{}
	for i, s := range ds.Series {
		if len(s.Points) == 0 {
			continue
		}

		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.Date
			ys[j] = float64(p.Count)
		}

		series = append(series, gochart.TimeSeries{
			Name:    LegendLabel(s),
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: seriesColors[i],
				StrokeWidth: 2,
			},
		})
	}

	if len(series) == 0 {
		series = append(series, gochart.TimeSeries{
			XValues: []time.Time{minDate, maxDate},
			YValues: []float64{0, 0},
			Style:   gochart.Style{Hidden: true},
		})
	}

	series = append(series, gochart.AnnotationSeries{
		Annotations: []gochart.Value2{{
			XValue: gochart.TimeToFloat64(minDate),
			YValue: 0,
			Label:  startDateLabel,
		}},
	})

	c := gochart.Chart{
		Title:  fmt.Sprintf("COVID-19 %s", ds.Metric),
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 30, Left: 70, Right: 30, Bottom: 30},
		},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat("Jan 02"),
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(minDate),
				Max: gochart.TimeToFloat64(maxDate),
			},
		},
		YAxis: gochart.YAxis{
			ValueFormatter: countFormatter,
			Range:          &gochart.ContinuousRange{Min: 0, Max: maxCount},
		},
		Series: series,
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c)}
	return c
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok && f >= 0 {
		return FormatCount(uint64(f))
	}
	return ""
}
