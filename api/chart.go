package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-chart/chart"
	"github.com/bitmark-inc/covid-chart/dashboard"
	"github.com/bitmark-inc/covid-chart/external/tracker"
	"github.com/bitmark-inc/covid-chart/schema"
)

type chartQueryParams struct {
	Type     string `form:"type"`
	Country1 string `form:"country1"`
	Country2 string `form:"country2"`
	End      *int   `form:"end"`
}

type hoverQueryParams struct {
	chartQueryParams
	Date string `form:"date" binding:"required"`
}

type chartDataResponse struct {
	Controls dashboard.Controls  `json:"controls"`
	Dataset  schema.ChartDataset `json:"dataset"`
	Extents  schema.Extents      `json:"extents"`
	Legend   [2]string           `json:"legend"`
}

// controls converts query parameters into the controls of an update cycle.
// Omitted values fall back to the dashboard defaults.
func (s *Server) controls(params chartQueryParams) (dashboard.Controls, error) {
	ctrl := s.dashboard.Defaults()

	metric, err := schema.ParseMetricType(params.Type)
	if err != nil {
		return ctrl, err
	}
	ctrl.Metric = metric

	if params.Country1 != "" {
		ctrl.CountryA = params.Country1
	}
	if params.Country2 != "" {
		ctrl.CountryB = params.Country2
	}
	if params.End != nil {
		ctrl.Slider = *params.End
	}
	return ctrl, nil
}

func (s *Server) getChart(c *gin.Context) {
	if !s.ready(c) {
		return
	}

	var params chartQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	ctrl, err := s.controls(params)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var buf bytes.Buffer
	renderer := chart.NewSVGRenderer(&buf, chart.WithSize(s.width, s.height))
	if _, _, err := s.dashboard.Update(c.Request.Context(), ctrl, renderer); err != nil {
		s.abortWithUpdateError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (s *Server) getChartData(c *gin.Context) {
	if !s.ready(c) {
		return
	}

	var params chartQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	ctrl, err := s.controls(params)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ds, ext, err := s.dashboard.Update(c.Request.Context(), ctrl, nil)
	if err != nil {
		s.abortWithUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, chartDataResponse{
		Controls: ctrl,
		Dataset:  ds,
		Extents:  ext,
		Legend: [2]string{
			chart.LegendLabel(ds.Series[0]),
			chart.LegendLabel(ds.Series[1]),
		},
	})
}

func (s *Server) getChartHover(c *gin.Context) {
	if !s.ready(c) {
		return
	}

	var params hoverQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	at, ok := chart.ParseDate(params.Date)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ctrl, err := s.controls(params.chartQueryParams)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	renderer := chart.NewSVGRenderer(io.Discard, chart.WithSize(s.width, s.height))
	if _, _, err := s.dashboard.Update(c.Request.Context(), ctrl, renderer); err != nil {
		s.abortWithUpdateError(c, err)
		return
	}

	event, _ := renderer.PointerMove(at)
	tooltips := event.Tooltips
	if tooltips == nil {
		tooltips = []chart.Tooltip{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     at.Format("2006-01-02"),
		"tooltips": tooltips,
	})
}

// abortWithUpdateError maps a failed update cycle to its error response
func (s *Server) abortWithUpdateError(c *gin.Context, err error) {
	var notFound *chart.CountryNotFoundError
	var unavailable *tracker.DataUnavailableError

	switch {
	case errors.As(err, &notFound):
		abortWithEncoding(c, http.StatusBadRequest, errorCountryNotFound, err)
	case errors.Is(err, dashboard.ErrSliderOutOfRange):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
	case errors.Is(err, dashboard.ErrNotReady):
		abortWithEncoding(c, http.StatusServiceUnavailable, errorNotReady, err)
	case errors.As(err, &unavailable):
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataUnavailable, err)
	case tracker.IsNetworkError(err), errors.Is(err, tracker.ErrEmptyLocationID):
		abortWithEncoding(c, http.StatusBadGateway, errorTrackerUnavailable, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.WithError(err).Info("update chart cancelled")
		abortWithEncoding(c, http.StatusServiceUnavailable, errorTrackerUnavailable, err)
	default:
		log.WithError(err).Error("update chart")
		sentry.CaptureException(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
