package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-chart/chart"
	"github.com/bitmark-inc/covid-chart/schema"
)

func TestDaysSince(t *testing.T) {
	assert.Equal(t, 0, DaysSince(chart.StartDate, chart.StartDate))
	assert.Equal(t, 0, DaysSince(chart.StartDate, chart.StartDate.Add(23*time.Hour)))
	assert.Equal(t, 195, DaysSince(chart.StartDate, time.Date(2020, 8, 4, 10, 43, 21, 0, time.UTC)))
	assert.Equal(t, -1, DaysSince(chart.StartDate, chart.StartDate.Add(-time.Hour)))
}

func TestSlider(t *testing.T) {
	s := NewSlider(time.Date(2020, 1, 25, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, Slider{Min: 0, Max: 3, Value: 3}, s)

	d, err := s.MaxDate(0)
	assert.NoError(t, err)
	assert.Equal(t, chart.StartDate, d)

	d, err = s.MaxDate(3)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 25, 0, 0, 0, 0, time.UTC), d)

	_, err = s.MaxDate(4)
	assert.True(t, errors.Is(err, ErrSliderOutOfRange))
	_, err = s.MaxDate(-1)
	assert.True(t, errors.Is(err, ErrSliderOutOfRange))
}

func TestSliderBeforeStartDate(t *testing.T) {
	assert.Equal(t, Slider{}, NewSlider(time.Time{}))
}

func TestCountries(t *testing.T) {
	records := []schema.LocationRecord{
		{CountryName: "US"},
		{CountryName: "China", Province: "Hubei"},
		{CountryName: "Afghanistan"},
		{CountryName: "China"},
		{CountryName: "US"},
	}
	assert.Equal(t, []string{"US", "Afghanistan", "China"}, Countries(records))
}

func TestDefaultControls(t *testing.T) {
	c := DefaultControls(Slider{Max: 12, Value: 12})
	assert.Equal(t, Controls{Metric: schema.Confirmed, CountryA: "US", CountryB: "Italy", Slider: 12}, c)
}
