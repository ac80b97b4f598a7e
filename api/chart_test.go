package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-chart/api/mocks"
	"github.com/bitmark-inc/covid-chart/chart"
	"github.com/bitmark-inc/covid-chart/dashboard"
	"github.com/bitmark-inc/covid-chart/external/tracker"
	trackermocks "github.com/bitmark-inc/covid-chart/external/tracker/mocks"
	"github.com/bitmark-inc/covid-chart/schema"
)

func timeline(values map[string]string) schema.TimeSeries {
	ts := schema.TimeSeries{}
	for k, v := range values {
		ts[k] = json.RawMessage(v)
	}
	return ts
}

func loadedCycle(t *testing.T, ctl *gomock.Controller) *dashboard.Cycle {
	updated := time.Date(2020, 1, 25, 8, 0, 0, 0, time.UTC)
	records := []schema.LocationRecord{
		{
			CountryName: "US",
			LastUpdated: updated,
			Timelines: map[schema.MetricType]schema.TimeSeries{
				schema.Confirmed: timeline(map[string]string{"1/22/20": "1", "1/23/20": "2", "1/24/20": "2"}),
				schema.Deaths:    timeline(map[string]string{"1/22/20": "0", "1/23/20": "0", "1/24/20": "1"}),
			},
		},
		{
			CountryName: "Italy",
			LastUpdated: updated,
			Timelines: map[schema.MetricType]schema.TimeSeries{
				schema.Confirmed: timeline(map[string]string{"1/22/20": "0", "1/23/20": "5", "1/24/20": "9"}),
				schema.Deaths:    timeline(map[string]string{"1/22/20": "0", "1/23/20": "1", "1/24/20": "2"}),
			},
		},
	}

	source := trackermocks.NewMockSource(ctl)
	source.EXPECT().FetchLocations(gomock.Any()).Return(records, nil).Times(1)

	c := dashboard.New(source)
	assert.NoError(t, c.Load(context.Background()))
	return c
}

func readyDashboard(ctl *gomock.Controller) *mocks.MockDashboard {
	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().State().Return(dashboard.StateReady).Times(1)
	d.EXPECT().Defaults().Return(dashboard.DefaultControls(dashboard.Slider{Max: 3, Value: 3})).Times(1)
	return d
}

func TestChartSVG(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{dashboard: loadedCycle(t, ctl), width: 640, height: 320}

	w := serve(s, "/api/chart")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg")
	assert.Contains(t, w.Body.String(), "US (2)")
	assert.Contains(t, w.Body.String(), "Italy (9)")
}

func TestChartSVGEmptyWindow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{dashboard: loadedCycle(t, ctl)}

	w := serve(s, "/api/chart?type=deaths&end=0")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestChartData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{dashboard: loadedCycle(t, ctl)}

	w := serve(s, "/api/chart/data?type=Deaths&country1=Italy&country2=US&end=2")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp chartDataResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, dashboard.Controls{Metric: schema.Deaths, CountryA: "Italy", CountryB: "US", Slider: 2}, resp.Controls)
	assert.Equal(t, time.Date(2020, 1, 24, 0, 0, 0, 0, time.UTC), resp.Dataset.MaxDate)
	if assert.NotNil(t, resp.Dataset.MaxCount) {
		assert.Equal(t, uint64(1), *resp.Dataset.MaxCount)
	}
	assert.Len(t, resp.Dataset.Series[0].Points, 2)
	assert.Len(t, resp.Dataset.Series[1].Points, 2)
	assert.Equal(t, [2]uint64{0, 1}, resp.Extents.ValueDomain)
	assert.Equal(t, [2]string{"Italy (1)", "US (0)"}, resp.Legend)
}

func TestChartHover(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{dashboard: loadedCycle(t, ctl)}

	w := serve(s, "/api/chart/hover?date=2020-01-23")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Date     string          `json:"date"`
		Tooltips []chart.Tooltip `json:"tooltips"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2020-01-23", resp.Date)
	if assert.Len(t, resp.Tooltips, 2) {
		assert.Equal(t, "US", resp.Tooltips[0].Country)
		assert.Equal(t, uint64(2), resp.Tooltips[0].Count)
		assert.Equal(t, "Italy", resp.Tooltips[1].Country)
		assert.Equal(t, uint64(5), resp.Tooltips[1].Count)
	}
}

func TestChartHoverInvalidDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().State().Return(dashboard.StateReady).Times(2)

	w := serve(&Server{dashboard: d}, "/api/chart/hover")
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidParameters, decodeError(t, w))

	w = serve(&Server{dashboard: d}, "/api/chart/hover?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidParameters, decodeError(t, w))
}

func TestChartUnknownType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := serve(&Server{dashboard: readyDashboard(ctl)}, "/api/chart?type=recovered")
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidParameters, decodeError(t, w))
}

func TestChartBadEnd(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().State().Return(dashboard.StateReady).Times(1)

	w := serve(&Server{dashboard: d}, "/api/chart/data?end=tomorrow")
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, errorCannotParseRequest, decodeError(t, w))
}

func TestChartNotReady(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().State().Return(dashboard.StateIdle).Times(1)

	w := serve(&Server{dashboard: d}, "/api/chart")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
	assert.Equal(t, errorNotReady, decodeError(t, w))
}

func TestChartDataUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDashboard(ctl)
	d.EXPECT().State().Return(dashboard.StateFailed).Times(1)
	d.EXPECT().Err().Return(&tracker.DataUnavailableError{
		Remote:   errors.New("remote"),
		Fallback: errors.New("fallback"),
	}).Times(1)

	w := serve(&Server{dashboard: d}, "/api/chart/data")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
	assert.Equal(t, errorDataUnavailable, decodeError(t, w))
}

func TestChartUpdateErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		resp   ErrorResponse
	}{
		{
			name:   "country not found",
			err:    &chart.CountryNotFoundError{Country: "Atlantis", Metric: schema.Confirmed},
			status: http.StatusBadRequest,
			resp:   errorCountryNotFound,
		},
		{
			name:   "slider out of range",
			err:    fmt.Errorf("%w: 9 not in [0, 3]", dashboard.ErrSliderOutOfRange),
			status: http.StatusBadRequest,
			resp:   errorInvalidParameters,
		},
		{
			name:   "not ready",
			err:    fmt.Errorf("%w: rendering", dashboard.ErrNotReady),
			status: http.StatusServiceUnavailable,
			resp:   errorNotReady,
		},
		{
			name:   "tracker",
			err:    &tracker.NetworkError{URL: "http://tracker/locations/225", Status: http.StatusBadGateway},
			status: http.StatusBadGateway,
			resp:   errorTrackerUnavailable,
		},
		{
			name:   "location without id",
			err:    tracker.ErrEmptyLocationID,
			status: http.StatusBadGateway,
			resp:   errorTrackerUnavailable,
		},
		{
			name:   "client gone",
			err:    context.Canceled,
			status: http.StatusServiceUnavailable,
			resp:   errorTrackerUnavailable,
		},
		{
			name:   "render",
			err:    errors.New("render chart: broken canvas"),
			status: http.StatusInternalServerError,
			resp:   errorInternalServer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			d := readyDashboard(ctl)
			d.EXPECT().Update(gomock.Any(), dashboard.Controls{
				Metric:   schema.Confirmed,
				CountryA: "Atlantis",
				CountryB: "Italy",
				Slider:   3,
			}, nil).Return(schema.ChartDataset{}, schema.Extents{}, tc.err).Times(1)

			w := serve(&Server{dashboard: d}, "/api/chart/data?country1=Atlantis")
			assert.Equal(t, tc.status, w.Code, "wrong status code")
			assert.Equal(t, tc.resp, decodeError(t, w))
		})
	}
}
