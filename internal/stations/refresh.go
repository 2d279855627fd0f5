package stations

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"bartd.opentransit.org/internal/logging"
)

const refreshTimeout = 60 * time.Second

// refreshStationList runs one station list cycle: fetch, normalize,
// store, then fan out for per-station details. On failure the previous
// snapshot stays in place.
func (manager *Manager) refreshStationList(ctx context.Context) error {
	payload, err := manager.client.Fetch(ctx, "stn.aspx", url.Values{"cmd": {"stns"}})
	if err != nil {
		return err
	}

	stations, err := manager.normalizer.Stations(payload)
	if err != nil {
		return err
	}

	manager.setStationList(stations)

	if manager.config.Verbose {
		logging.LogOperation(manager.logger, "station_list_refreshed",
			slog.Int("stations", len(stations)))
	}

	manager.refreshStationDetails(ctx, stations)
	return nil
}

// refreshElevatorAdvisories runs one elevator status cycle. Independent
// of the station list cycle; failure here never blocks it.
func (manager *Manager) refreshElevatorAdvisories(ctx context.Context) error {
	payload, err := manager.client.Fetch(ctx, "bsa.aspx", url.Values{"cmd": {"elev"}})
	if err != nil {
		return err
	}

	advisories, err := manager.normalizer.Advisories(payload)
	if err != nil {
		return err
	}

	manager.setElevatorAdvisories(advisories)
	return nil
}

func (manager *Manager) updateStationListPeriodically() {
	defer manager.wg.Done()

	logger := manager.logger.With(slog.String("component", "station_list_updater"))

	ticker := time.NewTicker(manager.config.ListRefreshInterval)
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			ctx = logging.WithLogger(ctx, logger)

			logging.LogOperation(logger, "updating_station_list")
			if err := manager.refreshStationList(ctx); err != nil {
				// Keep the previous snapshot; next tick tries again.
				logging.LogError(logger, "station list refresh failed", err)
			}
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_station_list_updates")
			return
		}
	}
}

func (manager *Manager) updateElevatorPeriodically() {
	defer manager.wg.Done()

	logger := manager.logger.With(slog.String("component", "elevator_updater"))

	ticker := time.NewTicker(manager.config.ElevatorRefreshInterval)
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			ctx = logging.WithLogger(ctx, logger)

			logging.LogOperation(logger, "updating_elevator_advisories")
			if err := manager.refreshElevatorAdvisories(ctx); err != nil {
				logging.LogError(logger, "elevator advisory refresh failed", err)
			}
			cancel()
		case <-manager.shutdownChan:
			logging.LogOperation(logger, "shutting_down_elevator_updates")
			return
		}
	}
}
