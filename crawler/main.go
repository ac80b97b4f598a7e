package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-chart/external/tracker"
)

const (
	logPrefix      = "cron"
	defaultTimeout = 60 * time.Second
)

type Cron interface {
	Run() error
}

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
	var output string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&output, "o", "", "[optional] snapshot file to write, defaults to tracker.fallback")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if output == "" {
		output = viper.GetString("tracker.fallback")
	}
	if output == "" {
		log.WithField("prefix", logPrefix).Fatal("no snapshot file configured")
	}

	variant, err := tracker.ParseVariant(viper.GetString("tracker.variant"))
	if nil != err {
		log.WithField("prefix", logPrefix).Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	crawler := newSnapshotCrawler(ctx, tracker.Config{
		Variant: variant,
		BaseURL: viper.GetString("tracker.base_url"),
		Timeout: viper.GetDuration("tracker.timeout"),
	}, output)

	if err := crawler.Run(); nil != err {
		log.WithField("prefix", logPrefix).WithError(err).Error("crawl snapshot")
		cancel()
		os.Exit(1)
	}
}
