package app

import (
	"log/slog"

	"bartd.opentransit.org/internal/stations"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the server configuration, the logger, and the station
// data manager.
type Application struct {
	Config         Config
	StationsConfig stations.Config
	Logger         *slog.Logger
	Stations       *stations.Manager
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), and the API keys
// accepted on this server's own endpoints. These are read from
// command-line flags when the Application starts.
type Config struct {
	Port    int
	Env     string
	ApiKeys []string
}
