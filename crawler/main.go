package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epimonitor/epimonitor-api/external/geodata"
	"github.com/epimonitor/epimonitor-api/external/jhu"
	"github.com/epimonitor/epimonitor-api/reconcile"
	"github.com/epimonitor/epimonitor-api/store"
)

const (
	logPrefix      = "cron"
	dateLayout     = "2006-01-02"
	defaultTimeout = 15 * time.Second

	// keepNumberOfDaysInDB bounds the retention window of reconciled
	// records.
	keepNumberOfDaysInDB = 400
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
	viper.SetEnvPrefix("epimonitor")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var (
		configFile string
		startFlag  string
		endFlag    string
		snapshot   string
	)

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&startFlag, "start", "", "first day of the range, YYYY-MM-DD (default: 30 days ago)")
	flag.StringVar(&endFlag, "end", "", "last day of the range, YYYY-MM-DD (default: yesterday)")
	flag.StringVar(&snapshot, "snapshot", "", "[optional] local snapshot file ingested instead of the remote source")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}

	end := time.Now().UTC().AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -29)
	if endFlag != "" {
		ts, err := time.Parse(dateLayout, endFlag)
		if err != nil {
			log.Panicf("parse end date with error: %s", err)
		}
		end = ts
	}
	if startFlag != "" {
		ts, err := time.Parse(dateLayout, startFlag)
		if err != nil {
			log.Panicf("parse start date with error: %s", err)
		}
		start = ts
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	if err := mongoClient.Connect(context.Background()); nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	httpClient := &http.Client{
		Timeout: defaultTimeout,
	}

	var source jhu.ReportSource
	if snapshot != "" {
		source = jhu.NewFile(snapshot)
	} else {
		source = jhu.NewHTTP(viper.GetString("reports.url"), httpClient)
	}

	classifier := geodata.New(viper.GetString("geodata.url"), httpClient)

	loader := reconcile.NewLoader(source, classifier, viper.GetInt("reports.workers"))

	dataset, err := loader.Load(context.Background(), start, end)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"start":  start.Format(dateLayout),
			"end":    end.Format(dateLayout),
			"error":  err,
		}).Error("reconciliation run")
		os.Exit(1)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"run":     dataset.RunID,
		"records": len(dataset.Records),
		"missing": dataset.MissingDays,
	}).Info("reconciliation run done")

	if err := mStore.ReplaceDaily(dataset.Records); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("persist reconciled records")
		os.Exit(1)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -keepNumberOfDaysInDB).Unix()
	if err := mStore.DeleteDailyBefore(cutoff); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("trim old records")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	log.Info("Shutting down mongo store")
	_ = mongoClient.Disconnect(ctx)
}
