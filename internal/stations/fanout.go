package stations

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"sync"

	"bartd.opentransit.org/internal/logging"
	"bartd.opentransit.org/internal/models"
)

// refreshStationDetails fans out per-station info and access requests
// across the given station list: two concurrent batches, one per data
// kind, each with one request per station. Each batch fans in behind a
// barrier, sorts its aggregate by station name, and replaces its cache
// slot atomically. A failed batch never touches the previous snapshot.
func (manager *Manager) refreshStationDetails(ctx context.Context, stationList []models.Station) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		manager.collectStationInfo(ctx, stationList)
	}()

	go func() {
		defer wg.Done()
		manager.collectStationAccess(ctx, stationList)
	}()

	wg.Wait()
}

type infoResult struct {
	abbr string
	info models.StationInfo
	err  error
}

func (manager *Manager) collectStationInfo(ctx context.Context, stationList []models.Station) {
	logger := manager.logger.With(slog.String("batch", "station_info"))

	results := make([]infoResult, len(stationList))

	var wg sync.WaitGroup
	for i, station := range stationList {
		wg.Add(1)
		go func(i int, abbr string) {
			defer wg.Done()
			info, err := manager.fetchStationInfo(ctx, abbr)
			results[i] = infoResult{abbr: abbr, info: info, err: err}
		}(i, station.Abbr)
	}
	wg.Wait()

	infos := make([]models.StationInfo, 0, len(results))
	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			logging.LogError(logger, "station info fetch failed", result.err,
				slog.String("station", result.abbr))
			if manager.config.FanOutPolicy == PolicyFailFast {
				logging.LogOperation(logger, "station_info_batch_aborted",
					slog.String("station", result.abbr))
				return
			}
			continue
		}
		infos = append(infos, result.info)
	}

	// A batch that produced nothing must not wipe a good snapshot.
	if len(stationList) > 0 && len(infos) == 0 {
		logging.LogOperation(logger, "station_info_batch_empty",
			slog.Int("failed", failed))
		return
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	manager.setStationInfo(infos)

	if manager.config.Verbose {
		logging.LogOperation(logger, "station_info_refreshed",
			slog.Int("stations", len(infos)), slog.Int("failed", failed))
	}
}

type accessResult struct {
	abbr   string
	access models.StationAccess
	err    error
}

func (manager *Manager) collectStationAccess(ctx context.Context, stationList []models.Station) {
	logger := manager.logger.With(slog.String("batch", "station_access"))

	results := make([]accessResult, len(stationList))

	var wg sync.WaitGroup
	for i, station := range stationList {
		wg.Add(1)
		go func(i int, abbr string) {
			defer wg.Done()
			access, err := manager.fetchStationAccess(ctx, abbr)
			results[i] = accessResult{abbr: abbr, access: access, err: err}
		}(i, station.Abbr)
	}
	wg.Wait()

	accesses := make([]models.StationAccess, 0, len(results))
	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			logging.LogError(logger, "station access fetch failed", result.err,
				slog.String("station", result.abbr))
			if manager.config.FanOutPolicy == PolicyFailFast {
				logging.LogOperation(logger, "station_access_batch_aborted",
					slog.String("station", result.abbr))
				return
			}
			continue
		}
		accesses = append(accesses, result.access)
	}

	if len(stationList) > 0 && len(accesses) == 0 {
		logging.LogOperation(logger, "station_access_batch_empty",
			slog.Int("failed", failed))
		return
	}

	sort.Slice(accesses, func(i, j int) bool {
		return accesses[i].Name < accesses[j].Name
	})

	manager.setStationAccess(accesses)

	if manager.config.Verbose {
		logging.LogOperation(logger, "station_access_refreshed",
			slog.Int("stations", len(accesses)), slog.Int("failed", failed))
	}
}

func (manager *Manager) fetchStationInfo(ctx context.Context, abbr string) (models.StationInfo, error) {
	payload, err := manager.client.Fetch(ctx, "stninfo.aspx", url.Values{
		"cmd":  {"stninfo"},
		"orig": {abbr},
	})
	if err != nil {
		return models.StationInfo{}, err
	}
	return manager.normalizer.StationInfo(payload)
}

func (manager *Manager) fetchStationAccess(ctx context.Context, abbr string) (models.StationAccess, error) {
	payload, err := manager.client.Fetch(ctx, "stnaccess.aspx", url.Values{
		"cmd":  {"stnaccess"},
		"orig": {abbr},
	})
	if err != nil {
		return models.StationAccess{}, err
	}
	return manager.normalizer.StationAccess(payload)
}
