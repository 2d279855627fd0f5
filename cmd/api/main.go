package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"bartd.opentransit.org/internal/app"
	"bartd.opentransit.org/internal/bart"
	"bartd.opentransit.org/internal/logging"
	"bartd.opentransit.org/internal/restapi"
	"bartd.opentransit.org/internal/stations"
)

func main() {
	// A .env file is optional; the environment wins when both are set.
	_ = godotenv.Load()

	var cfg app.Config
	var apiKeysFlag string
	var correctionsPath string
	var verbose bool

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&correctionsPath, "corrections", "", "Path to a YAML station-name correction table")
	flag.BoolVar(&verbose, "verbose", false, "Log every refresh cycle")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	stationsConfig := stations.Config{
		APIKey:          bart.APIKeyFromEnv(),
		CorrectionsPath: correctionsPath,
		Verbose:         verbose,
	}

	manager, err := stations.InitManager(stationsConfig, logger)
	if err != nil {
		logger.Error("failed to initialize station manager", "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	application := &app.Application{
		Config:         cfg,
		StationsConfig: stationsConfig,
		Logger:         logger,
		Stations:       manager,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
