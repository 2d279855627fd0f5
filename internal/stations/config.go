package stations

import "time"

// FanOutPolicy controls how a station-detail batch treats per-station
// failures.
type FanOutPolicy string

const (
	// PolicyBestEffort stores the successful subset of a batch and logs
	// each per-station failure.
	PolicyBestEffort FanOutPolicy = "best-effort"

	// PolicyFailFast abandons the whole slot update when any station in
	// the batch fails, keeping the previous snapshot.
	PolicyFailFast FanOutPolicy = "fail-fast"
)

// Config holds the settings for a station data Manager.
type Config struct {
	// BaseURL overrides the upstream API root; empty means the public API.
	BaseURL string

	// APIKey overrides the upstream API key; empty falls back to the
	// BART_API_KEY environment variable, then the public shared key.
	APIKey string

	// CorrectionsPath points at a YAML station-name correction table;
	// empty means the built-in defaults.
	CorrectionsPath string

	ListRefreshInterval     time.Duration
	ElevatorRefreshInterval time.Duration

	FanOutPolicy FanOutPolicy

	Verbose bool
}

func (config Config) withDefaults() Config {
	if config.ListRefreshInterval == 0 {
		config.ListRefreshInterval = 24 * time.Hour
	}
	if config.ElevatorRefreshInterval == 0 {
		config.ElevatorRefreshInterval = 15 * time.Minute
	}
	if config.FanOutPolicy == "" {
		config.FanOutPolicy = PolicyBestEffort
	}
	return config
}
