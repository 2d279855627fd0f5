package stations

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"bartd.opentransit.org/internal/models"
)

// clockLayout parses the upstream "h:mm AM" times together with their
// "MM/DD/YYYY" trip date.
const clockLayout = "1/2/2006 3:04 PM"

// PlanTrip performs a live schedule query for the next connection from
// orig to dest. Legs are enriched with display names resolved against
// the station list snapshot, and the trip carries its total duration in
// minutes.
func (manager *Manager) PlanTrip(ctx context.Context, orig, dest string) (models.Trip, error) {
	payload, err := manager.client.Fetch(ctx, "sched.aspx", url.Values{
		"cmd":  {"depart"},
		"orig": {orig},
		"dest": {dest},
	})
	if err != nil {
		return models.Trip{}, err
	}

	trip, err := manager.normalizer.Trip(payload)
	if err != nil {
		return models.Trip{}, err
	}

	trip.OriginName = manager.resolveStationName(trip.Origin)
	trip.DestinationName = manager.resolveStationName(trip.Destination)
	for i := range trip.Legs {
		trip.Legs[i].OriginName = manager.resolveStationName(trip.Legs[i].Origin)
		trip.Legs[i].DestinationName = manager.resolveStationName(trip.Legs[i].Destination)
	}

	duration, err := tripDuration(trip.Date, trip.DepartTime, trip.ArriveTime)
	if err != nil {
		return models.Trip{}, err
	}
	trip.DurationMinutes = duration

	return trip, nil
}

// resolveStationName falls back to the abbreviation when the snapshot
// cannot resolve it, so a live trip query still answers while the list
// is not ready.
func (manager *Manager) resolveStationName(abbr string) string {
	name, err := manager.StationName(abbr)
	if err != nil {
		return abbr
	}
	return name
}

func tripDuration(date, departTime, arriveTime string) (int, error) {
	depart, err := time.Parse(clockLayout, date+" "+departTime)
	if err != nil {
		return 0, fmt.Errorf("parsing departure time: %w", err)
	}
	arrive, err := time.Parse(clockLayout, date+" "+arriveTime)
	if err != nil {
		return 0, fmt.Errorf("parsing arrival time: %w", err)
	}

	// Trips crossing midnight arrive on the next date.
	if arrive.Before(depart) {
		arrive = arrive.Add(24 * time.Hour)
	}

	return int(arrive.Sub(depart).Minutes()), nil
}
