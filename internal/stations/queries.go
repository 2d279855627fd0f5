package stations

import (
	"strings"

	"bartd.opentransit.org/internal/bart"
	"bartd.opentransit.org/internal/models"
	"bartd.opentransit.org/internal/utils"
)

// NearestStation returns the station closest to the given coordinate and
// its great-circle distance in miles. Ties are broken by list order: the
// first station at the minimum distance wins, and the distance returned
// is that station's own.
func (manager *Manager) NearestStation(lat, lon float64) (models.Station, float64, error) {
	stationList, err := manager.GetStations()
	if err != nil {
		return models.Station{}, 0, err
	}
	if len(stationList) == 0 {
		return models.Station{}, 0, bart.ErrNotReady
	}

	nearest := stationList[0]
	minDistance := utils.MilesFromKilometers(
		utils.Haversine(lat, lon, stationList[0].Latitude, stationList[0].Longitude))

	for _, station := range stationList[1:] {
		distance := utils.MilesFromKilometers(
			utils.Haversine(lat, lon, station.Latitude, station.Longitude))
		if distance < minDistance {
			nearest = station
			minDistance = distance
		}
	}

	return nearest, minDistance, nil
}

// StationName resolves a station abbreviation to its display name
// against the current station list snapshot.
func (manager *Manager) StationName(abbr string) (string, error) {
	stationList, err := manager.GetStations()
	if err != nil {
		return "", err
	}

	for _, station := range stationList {
		if strings.EqualFold(station.Abbr, abbr) {
			return station.Name, nil
		}
	}

	return "", &bart.NotFoundError{Kind: "station", Key: abbr}
}

// StationDetail returns the cached info and access entries for one
// station abbreviation.
func (manager *Manager) StationDetail(abbr string) (models.StationDetail, error) {
	infos, err := manager.GetStationInfo()
	if err != nil {
		return models.StationDetail{}, err
	}
	accesses, err := manager.GetStationAccess()
	if err != nil {
		return models.StationDetail{}, err
	}

	detail := models.StationDetail{}
	for i := range infos {
		if strings.EqualFold(infos[i].Abbr, abbr) {
			detail.Info = &infos[i]
			break
		}
	}
	for i := range accesses {
		if strings.EqualFold(accesses[i].Abbr, abbr) {
			detail.Access = &accesses[i]
			break
		}
	}

	if detail.Info == nil && detail.Access == nil {
		return models.StationDetail{}, &bart.NotFoundError{Kind: "station", Key: abbr}
	}
	return detail, nil
}
