// Package stations maintains the in-memory snapshots of BART station
// data and answers point queries against them.
package stations

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bartd.opentransit.org/internal/bart"
	"bartd.opentransit.org/internal/logging"
	"bartd.opentransit.org/internal/models"
)

const initialRefreshTimeout = 60 * time.Second

// Manager owns the snapshot cache and the background refresh cycles.
// Each snapshot slot is read as a whole and replaced as a whole; the
// scheduler is the only writer, queries are the readers.
type Manager struct {
	client     *bart.Client
	normalizer *bart.Normalizer
	config     Config
	logger     *slog.Logger

	snapshotMutex      sync.RWMutex
	stationList        []models.Station
	stationInfo        []models.StationInfo
	stationAccess      []models.StationAccess
	elevatorAdvisories []string
	listReady          bool
	infoReady          bool
	accessReady        bool
	elevatorReady      bool

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager creates a Manager, performs the initial refresh of both
// cycles, and starts the periodic refresh goroutines. A failed initial
// refresh is logged, not fatal: the affected queries answer not-ready
// until the next scheduled tick succeeds.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	config = config.withDefaults()

	if logger == nil {
		logger = slog.Default()
	}

	corrections := bart.DefaultCorrections()
	if config.CorrectionsPath != "" {
		loaded, err := bart.LoadCorrections(config.CorrectionsPath)
		if err != nil {
			return nil, fmt.Errorf("loading corrections: %w", err)
		}
		corrections = loaded
	}

	manager := &Manager{
		client:       bart.NewClient(config.BaseURL, config.APIKey, logger),
		normalizer:   bart.NewNormalizer(corrections),
		config:       config,
		logger:       logger.With(slog.String("component", "station_manager")),
		shutdownChan: make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), initialRefreshTimeout)
	defer cancel()

	if err := manager.refreshStationList(ctx); err != nil {
		logging.LogError(manager.logger, "initial station list refresh failed", err)
	}
	if err := manager.refreshElevatorAdvisories(ctx); err != nil {
		logging.LogError(manager.logger, "initial elevator advisory refresh failed", err)
	}

	manager.wg.Add(1)
	go manager.updateStationListPeriodically()

	manager.wg.Add(1)
	go manager.updateElevatorPeriodically()

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
	})
}

func (manager *Manager) setStationList(stations []models.Station) {
	manager.snapshotMutex.Lock()
	defer manager.snapshotMutex.Unlock()
	manager.stationList = stations
	manager.listReady = true
}

func (manager *Manager) setStationInfo(infos []models.StationInfo) {
	manager.snapshotMutex.Lock()
	defer manager.snapshotMutex.Unlock()
	manager.stationInfo = infos
	manager.infoReady = true
}

func (manager *Manager) setStationAccess(accesses []models.StationAccess) {
	manager.snapshotMutex.Lock()
	defer manager.snapshotMutex.Unlock()
	manager.stationAccess = accesses
	manager.accessReady = true
}

func (manager *Manager) setElevatorAdvisories(advisories []string) {
	manager.snapshotMutex.Lock()
	defer manager.snapshotMutex.Unlock()
	manager.elevatorAdvisories = advisories
	manager.elevatorReady = true
}

// GetStations returns the station list snapshot, or bart.ErrNotReady
// before the first successful list refresh.
func (manager *Manager) GetStations() ([]models.Station, error) {
	manager.snapshotMutex.RLock()
	defer manager.snapshotMutex.RUnlock()
	if !manager.listReady {
		return nil, bart.ErrNotReady
	}
	return manager.stationList, nil
}

// GetStationInfo returns the station info snapshot, sorted by station
// name, or bart.ErrNotReady before the first successful fan-out.
func (manager *Manager) GetStationInfo() ([]models.StationInfo, error) {
	manager.snapshotMutex.RLock()
	defer manager.snapshotMutex.RUnlock()
	if !manager.infoReady {
		return nil, bart.ErrNotReady
	}
	return manager.stationInfo, nil
}

// GetStationAccess returns the station accessibility snapshot, sorted by
// station name, or bart.ErrNotReady before the first successful fan-out.
func (manager *Manager) GetStationAccess() ([]models.StationAccess, error) {
	manager.snapshotMutex.RLock()
	defer manager.snapshotMutex.RUnlock()
	if !manager.accessReady {
		return nil, bart.ErrNotReady
	}
	return manager.stationAccess, nil
}

// GetElevatorAdvisories returns the elevator advisory snapshot, or
// bart.ErrNotReady before the first successful elevator refresh.
func (manager *Manager) GetElevatorAdvisories() ([]string, error) {
	manager.snapshotMutex.RLock()
	defer manager.snapshotMutex.RUnlock()
	if !manager.elevatorReady {
		return nil, bart.ErrNotReady
	}
	return manager.elevatorAdvisories, nil
}
