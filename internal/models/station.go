package models

// Station is one entry in the station list snapshot. Abbr is the stable
// unique key; coordinates are decimal degrees.
type Station struct {
	Name      string  `json:"name"`
	Abbr      string  `json:"abbr"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	County    string  `json:"county"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zipCode"`
}

// StationInfo is the descriptive metadata collected per station by the
// detail fan-out.
type StationInfo struct {
	Name           string   `json:"name"`
	Abbr           string   `json:"abbr"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	County         string   `json:"county"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zipCode"`
	NorthRoutes    []string `json:"northRoutes"`
	SouthRoutes    []string `json:"southRoutes"`
	NorthPlatforms []string `json:"northPlatforms"`
	SouthPlatforms []string `json:"southPlatforms"`
	PlatformInfo   string   `json:"platformInfo"`
	Intro          string   `json:"intro"`
	CrossStreet    string   `json:"crossStreet"`
	Food           string   `json:"food"`
	Shopping       string   `json:"shopping"`
	Attraction     string   `json:"attraction"`
}

// StationAccess is the accessibility metadata collected per station by
// the detail fan-out.
type StationAccess struct {
	Name            string `json:"name"`
	Abbr            string `json:"abbr"`
	HasParking      bool   `json:"hasParking"`
	HasBikeRacks    bool   `json:"hasBikeRacks"`
	HasBikeStation  bool   `json:"hasBikeStation"`
	HasLockers      bool   `json:"hasLockers"`
	Entering        string `json:"entering"`
	Exiting         string `json:"exiting"`
	Parking         string `json:"parking"`
	Lockers         string `json:"lockers"`
	BikeStationText string `json:"bikeStationText"`
}

// StationDetail combines the info and access entries for one station, as
// served by the station endpoint.
type StationDetail struct {
	Info   *StationInfo   `json:"info"`
	Access *StationAccess `json:"access"`
}

// NearbyStation pairs a station with its distance in miles from a query
// point.
type NearbyStation struct {
	Station       Station `json:"station"`
	DistanceMiles float64 `json:"distanceMiles"`
}
