package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-chart/api"
	"github.com/bitmark-inc/covid-chart/utils"
)

var (
	server  *api.Server
	metrics io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("tracker.variant", "all")
	viper.SetDefault("tracker.timeout", 15*time.Second)
	viper.SetDefault("metrics.prefix", "covid_chart")
	viper.SetDefault("metrics.interval", time.Minute)
	viper.SetDefault("chart.width", 960)
	viper.SetDefault("chart.height", 500)

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

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown chart api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if metrics != nil {
			log.Info("Flushing metrics")
			if err := metrics.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	rootScope, closer := utils.NewMetricsScope(viper.GetString("metrics.prefix"), viper.GetDuration("metrics.interval"))
	metrics = closer
	log.WithField("prefix", "init").Info("Initialized metrics scope")

	cycle, err := utils.NewDashboard(rootScope)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").
		WithField("variant", viper.GetString("tracker.variant")).
		Info("Initialized tracker source")

	// a failed load keeps the server up to report the failure
	if err := cycle.Load(initialCtx); err != nil {
		sentry.CaptureException(err)
		log.WithField("prefix", "init").WithError(err).Error("Load chart dataset")
	}

	// Init http server
	server = api.NewServer(cycle)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
