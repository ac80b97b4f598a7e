package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bitmark-inc/covid-chart/chart"
	"github.com/bitmark-inc/covid-chart/schema"
	"github.com/bitmark-inc/covid-chart/utils"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	viper.SetDefault("tracker.variant", "all")
	viper.SetDefault("tracker.timeout", 15*time.Second)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidchart")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

type renderOptions struct {
	configFile string
	metric     string
	country1   string
	country2   string
	end        int
	out        string
	hover      string
}

func newRenderCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the two country comparison chart into an SVG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadConfig(opts.configFile)
			initSentry()
			defer sentry.Flush(2 * time.Second)

			if err := render(cmd.Context(), opts, cmd.OutOrStdout()); err != nil {
				sentry.CaptureException(err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "./config.yaml", "path of configuration file")
	flags.StringVar(&opts.metric, "type", string(schema.Confirmed), "metric to chart: confirmed or deaths")
	flags.StringVar(&opts.country1, "country1", "", "first country (default US)")
	flags.StringVar(&opts.country2, "country2", "", "second country (default Italy)")
	flags.IntVar(&opts.end, "end", -1, "days since Jan. 22, 2020 to chart up to (default latest)")
	flags.StringVarP(&opts.out, "out", "o", "chart.svg", "output SVG file")
	flags.StringVar(&opts.hover, "hover", "", "print the tooltips at this date (YYYY-MM-DD)")

	return cmd
}

func render(ctx context.Context, opts renderOptions, stdout io.Writer) error {
	metric, err := schema.ParseMetricType(opts.metric)
	if err != nil {
		return err
	}

	var hoverAt time.Time
	if opts.hover != "" {
		at, ok := chart.ParseDate(opts.hover)
		if !ok {
			return fmt.Errorf("invalid hover date %q", opts.hover)
		}
		hoverAt = at
	}

	cycle, err := utils.NewDashboard(tally.NoopScope)
	if err != nil {
		return err
	}

	if err := cycle.Load(ctx); err != nil {
		logger.Error("load chart dataset", zap.Error(err))
		return err
	}

	ctrl := cycle.Defaults()
	ctrl.Metric = metric
	if opts.country1 != "" {
		ctrl.CountryA = opts.country1
	}
	if opts.country2 != "" {
		ctrl.CountryB = opts.country2
	}
	if opts.end >= 0 {
		ctrl.Slider = opts.end
	}

	var buf bytes.Buffer
	r := chart.NewSVGRenderer(&buf, chart.WithSize(viper.GetInt("chart.width"), viper.GetInt("chart.height")))
	r.OnHover(func(e chart.HoverEvent) {
		for _, tip := range e.Tooltips {
			fmt.Fprintf(stdout, "%s\t%s\t%s\n", tip.Country, tip.Date.Format("2006-01-02"), chart.FormatCount(tip.Count))
		}
	})

	ds, _, err := cycle.Update(ctx, ctrl, r)
	if err != nil {
		logger.Error("render chart", zap.Error(err))
		return err
	}

	if err := os.WriteFile(opts.out, buf.Bytes(), 0644); err != nil {
		return err
	}

	logger.Info("Rendered chart",
		zap.String("out", opts.out),
		zap.String("type", ds.Metric.String()),
		zap.String("country1", chart.LegendLabel(ds.Series[0])),
		zap.String("country2", chart.LegendLabel(ds.Series[1])),
		zap.Time("max_date", ds.MaxDate))

	if !hoverAt.IsZero() {
		r.PointerMove(hoverAt)
	}

	return nil
}

func main() {
	defer logger.Sync()

	if err := newRenderCommand().ExecuteContext(context.Background()); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}
