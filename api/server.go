package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/covid-chart/chart"
	"github.com/bitmark-inc/covid-chart/dashboard"
	"github.com/bitmark-inc/covid-chart/logmodule"
	"github.com/bitmark-inc/covid-chart/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Dashboard - the update cycle operations served over http
type Dashboard interface {
	State() dashboard.State
	Err() error
	Slider() dashboard.Slider
	LastUpdated() time.Time
	Countries() []string
	Defaults() dashboard.Controls
	Update(ctx context.Context, ctrl dashboard.Controls, r chart.Renderer) (schema.ChartDataset, schema.Extents, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	dashboard Dashboard

	// chart canvas size
	width  int
	height int
}

// NewServer new instance of server
func NewServer(d Dashboard) *Server {
	return &Server{
		dashboard: d,
		width:     viper.GetInt("chart.width"),
		height:    viper.GetInt("chart.height"),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET"},
		AllowHeaders:    []string{"Origin"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)
	apiRoute.GET("/countries", s.getCountries)

	chartRoute := apiRoute.Group("/chart")
	{
		chartRoute.GET("", s.getChart)
		chartRoute.GET("/data", s.getChartData)
		chartRoute.GET("/hover", s.getChartHover)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	state := s.dashboard.State()
	if state == dashboard.StateFailed {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataUnavailable, s.dashboard.Err())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
		"state":   state.String(),
	})
}

func (s *Server) information(c *gin.Context) {
	if !s.ready(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
				"variant": viper.GetString("tracker.variant"),
			},
			"types":        schema.Metrics,
			"countries":    s.dashboard.Countries(),
			"defaults":     s.dashboard.Defaults(),
			"slider":       s.dashboard.Slider(),
			"start_date":   chart.StartDate.Format("2006-01-02"),
			"last_updated": s.dashboard.LastUpdated(),
		},
	})
}

func (s *Server) getCountries(c *gin.Context) {
	if !s.ready(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": s.dashboard.Countries()})
}

// ready aborts the request while the dashboard can not serve charts
func (s *Server) ready(c *gin.Context) bool {
	switch s.dashboard.State() {
	case dashboard.StateFailed:
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataUnavailable, s.dashboard.Err())
		return false
	case dashboard.StateIdle, dashboard.StateFetching:
		abortWithEncoding(c, http.StatusServiceUnavailable, errorNotReady)
		return false
	default:
		return true
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		if err != nil {
			c.Error(err)
		}
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
