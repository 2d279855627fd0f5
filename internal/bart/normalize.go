package bart

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bartd.opentransit.org/internal/models"
)

// Normalizer converts raw upstream payloads into canonical records:
// whitespace is trimmed, known data defects are corrected, and results
// always come out as uniform collections regardless of cardinality.
type Normalizer struct {
	corrections Corrections
}

// NewNormalizer creates a Normalizer with the given correction table.
// A nil table falls back to the built-in defaults.
func NewNormalizer(corrections Corrections) *Normalizer {
	if corrections == nil {
		corrections = DefaultCorrections()
	}
	return &Normalizer{corrections: corrections}
}

// Stations normalizes a station list payload.
func (n *Normalizer) Stations(payload []byte) ([]models.Station, error) {
	var doc stationListDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return nil, &ParseError{Op: "stations", Err: err}
	}
	if err := upstreamError(doc.Message); err != nil {
		return nil, &ParseError{Op: "stations", Err: err}
	}

	stations := make([]models.Station, 0, len(doc.Stations))
	for _, el := range doc.Stations {
		abbr := strings.TrimSpace(el.Abbr)

		lat, err := strconv.ParseFloat(strings.TrimSpace(el.Latitude), 64)
		if err != nil {
			return nil, &ParseError{Op: "stations", Err: fmt.Errorf("station %s: bad latitude: %w", abbr, err)}
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(el.Longitude), 64)
		if err != nil {
			return nil, &ParseError{Op: "stations", Err: fmt.Errorf("station %s: bad longitude: %w", abbr, err)}
		}

		stations = append(stations, models.Station{
			Name:      n.corrections.Apply(abbr, strings.TrimSpace(el.Name)),
			Abbr:      abbr,
			Latitude:  lat,
			Longitude: lon,
			Address:   strings.TrimSpace(el.Address),
			City:      strings.TrimSpace(el.City),
			County:    strings.TrimSpace(el.County),
			State:     strings.TrimSpace(el.State),
			ZipCode:   strings.TrimSpace(el.ZipCode),
		})
	}
	return stations, nil
}

// StationInfo normalizes a single-station info payload.
func (n *Normalizer) StationInfo(payload []byte) (models.StationInfo, error) {
	var doc stationInfoDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return models.StationInfo{}, &ParseError{Op: "stninfo", Err: err}
	}
	if err := upstreamError(doc.Message); err != nil {
		return models.StationInfo{}, &ParseError{Op: "stninfo", Err: err}
	}
	if len(doc.Stations) == 0 {
		return models.StationInfo{}, &ParseError{Op: "stninfo", Err: errors.New("no station element in payload")}
	}

	el := doc.Stations[0]
	abbr := strings.TrimSpace(el.Abbr)
	return models.StationInfo{
		Name:           n.corrections.Apply(abbr, strings.TrimSpace(el.Name)),
		Abbr:           abbr,
		Address:        strings.TrimSpace(el.Address),
		City:           strings.TrimSpace(el.City),
		County:         strings.TrimSpace(el.County),
		State:          strings.TrimSpace(el.State),
		ZipCode:        strings.TrimSpace(el.ZipCode),
		NorthRoutes:    trimEach(el.NorthRoutes),
		SouthRoutes:    trimEach(el.SouthRoutes),
		NorthPlatforms: trimEach(el.NorthPlatforms),
		SouthPlatforms: trimEach(el.SouthPlatforms),
		PlatformInfo:   strings.TrimSpace(el.PlatformInfo),
		Intro:          strings.TrimSpace(el.Intro),
		CrossStreet:    strings.TrimSpace(el.CrossStreet),
		Food:           strings.TrimSpace(el.Food),
		Shopping:       strings.TrimSpace(el.Shopping),
		Attraction:     strings.TrimSpace(el.Attraction),
	}, nil
}

// StationAccess normalizes a single-station accessibility payload.
func (n *Normalizer) StationAccess(payload []byte) (models.StationAccess, error) {
	var doc stationAccessDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return models.StationAccess{}, &ParseError{Op: "stnaccess", Err: err}
	}
	if err := upstreamError(doc.Message); err != nil {
		return models.StationAccess{}, &ParseError{Op: "stnaccess", Err: err}
	}
	if len(doc.Stations) == 0 {
		return models.StationAccess{}, &ParseError{Op: "stnaccess", Err: errors.New("no station element in payload")}
	}

	el := doc.Stations[0]
	abbr := strings.TrimSpace(el.Abbr)
	return models.StationAccess{
		Name:            n.corrections.Apply(abbr, strings.TrimSpace(el.Name)),
		Abbr:            abbr,
		HasParking:      flagSet(el.ParkingFlag),
		HasBikeRacks:    flagSet(el.BikeFlag),
		HasBikeStation:  flagSet(el.BikeStationFlag),
		HasLockers:      flagSet(el.LockerFlag),
		Entering:        strings.TrimSpace(el.Entering),
		Exiting:         strings.TrimSpace(el.Exiting),
		Parking:         strings.TrimSpace(el.Parking),
		Lockers:         strings.TrimSpace(el.Lockers),
		BikeStationText: strings.TrimSpace(el.BikeStationText),
	}, nil
}

// Advisories normalizes a service or elevator advisory payload into a
// list of messages. A single unwrapped advisory comes back as a
// one-element list.
func (n *Normalizer) Advisories(payload []byte) ([]string, error) {
	var doc advisoryDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return nil, &ParseError{Op: "bsa", Err: err}
	}
	if err := upstreamError(doc.Message); err != nil {
		return nil, &ParseError{Op: "bsa", Err: err}
	}

	advisories := make([]string, 0, len(doc.Advisories))
	for _, el := range doc.Advisories {
		if description := strings.TrimSpace(el.Description); description != "" {
			advisories = append(advisories, description)
		}
	}
	return advisories, nil
}

// TrainCount normalizes a train count payload.
func (n *Normalizer) TrainCount(payload []byte) (int, error) {
	var doc trainCountDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return 0, &ParseError{Op: "count", Err: err}
	}
	if err := upstreamError(doc.Message); err != nil {
		return 0, &ParseError{Op: "count", Err: err}
	}
	return doc.TrainCount, nil
}

// Trip normalizes a schedule departure payload into the first offered
// trip. Legs come out as a list regardless of leg count; station names
// are left unresolved for the caller to enrich against its snapshot.
func (n *Normalizer) Trip(payload []byte) (models.Trip, error) {
	var doc scheduleDoc
	if err := xml.Unmarshal(payload, &doc); err != nil {
		return models.Trip{}, &ParseError{Op: "depart", Err: err}
	}
	if err := upstreamError(doc.Message); err != nil {
		return models.Trip{}, &ParseError{Op: "depart", Err: err}
	}
	if len(doc.Trips) == 0 {
		return models.Trip{}, &ParseError{Op: "depart", Err: errors.New("no trip element in payload")}
	}

	el := doc.Trips[0]
	trip := models.Trip{
		Origin:      strings.TrimSpace(el.Origin),
		Destination: strings.TrimSpace(el.Destination),
		Fare:        strings.TrimSpace(el.Fare),
		DepartTime:  strings.TrimSpace(el.OrigTimeMin),
		ArriveTime:  strings.TrimSpace(el.DestTimeMin),
		Date:        strings.TrimSpace(el.OrigTimeDate),
		Legs:        make([]models.Leg, 0, len(el.Legs)),
	}

	for _, leg := range el.Legs {
		order, _ := strconv.Atoi(strings.TrimSpace(leg.Order))
		trip.Legs = append(trip.Legs, models.Leg{
			Order:            order,
			Origin:           strings.TrimSpace(leg.Origin),
			Destination:      strings.TrimSpace(leg.Destination),
			DepartTime:       strings.TrimSpace(leg.OrigTimeMin),
			ArriveTime:       strings.TrimSpace(leg.DestTimeMin),
			Line:             strings.TrimSpace(leg.Line),
			TrainHeadStation: strings.TrimSpace(leg.TrainHeadStation),
		})
	}
	return trip, nil
}

func upstreamError(msg messageElement) error {
	if text := strings.TrimSpace(msg.Error); text != "" {
		return fmt.Errorf("upstream error: %s", text)
	}
	return nil
}

func trimEach(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	return trimmed
}

func flagSet(value string) bool {
	return strings.TrimSpace(value) == "1"
}
