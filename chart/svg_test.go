package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/bitmark-inc/covid-chart/schema"
)

func TestLegendLabel(t *testing.T) {
	s := schema.CountrySeries{Country: "US", Points: []schema.SeriesPoint{{Date: day(0), Count: 1234567}}}
	assert.Equal(t, "US (1,234,567)", LegendLabel(s))
	assert.Equal(t, "Italy", LegendLabel(schema.CountrySeries{Country: "Italy"}))
}

func TestSVGRender(t *testing.T) {
	ds, err := Extract(sampleRecords(), schema.Confirmed, "US", "Italy", day(2))
	assert.NoError(t, err)

	var buf bytes.Buffer
	r := NewSVGRenderer(&buf, WithSize(800, 400))

	err = r.Render(ds, DeriveExtents(ds))
	assert.NoError(t, err)

	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "US (2)")
	assert.Contains(t, svg, "Italy (5)")
	assert.Contains(t, svg, startDateLabel)
}

func TestSVGRenderEmptyDataset(t *testing.T) {
	ds, err := Extract(sampleRecords(), schema.Deaths, "US", "Italy", day(0))
	assert.NoError(t, err)

	var buf bytes.Buffer
	r := NewSVGRenderer(&buf)

	assert.NotPanics(t, func() {
		err = r.Render(ds, DeriveExtents(ds))
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestSVGChartSkipsEmptySeries(t *testing.T) {
	max := uint64(3)
	ds := schema.ChartDataset{
		MaxDate:  day(1),
		MaxCount: &max,
		Series: [2]schema.CountrySeries{
			{Country: "US", Points: []schema.SeriesPoint{{Date: day(0), Count: 3}}},
			{Country: "Italy"},
		},
	}

	c := NewSVGRenderer(nil).Chart(ds, DeriveExtents(ds))

	names := []string{}
	for _, s := range c.Series {
		if _, ok := s.(gochart.AnnotationSeries); ok {
			continue
		}
		names = append(names, s.GetName())
	}
	assert.Equal(t, []string{"US (3)"}, names)

	// a single day domain is widened so the axis has a range
	assert.True(t, c.XAxis.Range.GetMax() > c.XAxis.Range.GetMin())
}

func TestSVGPointerMove(t *testing.T) {
	var buf bytes.Buffer
	r := NewSVGRenderer(&buf)

	_, ok := r.PointerMove(day(0))
	assert.False(t, ok)

	events := []HoverEvent{}
	r.OnHover(func(e HoverEvent) {
		events = append(events, e)
	})

	ds, _ := Extract(sampleRecords(), schema.Confirmed, "US", "Italy", day(2))
	assert.NoError(t, r.Render(ds, DeriveExtents(ds)))

	e, ok := r.PointerMove(day(1))
	assert.True(t, ok)
	assert.Len(t, events, 1)
	assert.Equal(t, e, events[0])
	assert.Equal(t, uint64(2), e.Tooltips[0].Count)
	assert.Equal(t, uint64(5), e.Tooltips[1].Count)
}
