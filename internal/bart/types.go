package bart

import "encoding/xml"

// Payload structs for the upstream XML documents. Repeated elements
// decode into slices, so a one-element result and a many-element result
// come out in the same shape.

type stationListDoc struct {
	XMLName  xml.Name         `xml:"root"`
	Stations []stationElement `xml:"stations>station"`
	Message  messageElement   `xml:"message"`
}

type stationElement struct {
	Name      string `xml:"name"`
	Abbr      string `xml:"abbr"`
	Latitude  string `xml:"gtfs_latitude"`
	Longitude string `xml:"gtfs_longitude"`
	Address   string `xml:"address"`
	City      string `xml:"city"`
	County    string `xml:"county"`
	State     string `xml:"state"`
	ZipCode   string `xml:"zipcode"`
}

type stationInfoDoc struct {
	XMLName  xml.Name             `xml:"root"`
	Stations []stationInfoElement `xml:"stations>station"`
	Message  messageElement       `xml:"message"`
}

type stationInfoElement struct {
	Name           string   `xml:"name"`
	Abbr           string   `xml:"abbr"`
	Latitude       string   `xml:"gtfs_latitude"`
	Longitude      string   `xml:"gtfs_longitude"`
	Address        string   `xml:"address"`
	City           string   `xml:"city"`
	County         string   `xml:"county"`
	State          string   `xml:"state"`
	ZipCode        string   `xml:"zipcode"`
	NorthRoutes    []string `xml:"north_routes>route"`
	SouthRoutes    []string `xml:"south_routes>route"`
	NorthPlatforms []string `xml:"north_platforms>platform"`
	SouthPlatforms []string `xml:"south_platforms>platform"`
	PlatformInfo   string   `xml:"platform_info"`
	Intro          string   `xml:"intro"`
	CrossStreet    string   `xml:"cross_street"`
	Food           string   `xml:"food"`
	Shopping       string   `xml:"shopping"`
	Attraction     string   `xml:"attraction"`
	Link           string   `xml:"link"`
}

type stationAccessDoc struct {
	XMLName  xml.Name               `xml:"root"`
	Stations []stationAccessElement `xml:"stations>station"`
	Message  messageElement         `xml:"message"`
}

type stationAccessElement struct {
	Name            string `xml:"name"`
	Abbr            string `xml:"abbr"`
	ParkingFlag     string `xml:"parking_flag,attr"`
	BikeFlag        string `xml:"bike_flag,attr"`
	BikeStationFlag string `xml:"bike_station_flag,attr"`
	LockerFlag      string `xml:"locker_flag,attr"`
	Entering        string `xml:"entering"`
	Exiting         string `xml:"exiting"`
	Parking         string `xml:"parking"`
	Lockers         string `xml:"lockers"`
	BikeStationText string `xml:"bike_station_text"`
}

// advisoryDoc covers both service advisories (cmd=bsa) and elevator
// advisories (cmd=elev); the documents share the bsa element shape.
type advisoryDoc struct {
	XMLName    xml.Name          `xml:"root"`
	Advisories []advisoryElement `xml:"bsa"`
	Message    messageElement    `xml:"message"`
}

type advisoryElement struct {
	Station     string `xml:"station"`
	Type        string `xml:"type"`
	Description string `xml:"description"`
	Posted      string `xml:"posted"`
}

type trainCountDoc struct {
	XMLName    xml.Name       `xml:"root"`
	TrainCount int            `xml:"traincount"`
	Message    messageElement `xml:"message"`
}

type scheduleDoc struct {
	XMLName xml.Name       `xml:"root"`
	Date    string         `xml:"schedule>date"`
	Trips   []tripElement  `xml:"schedule>request>trip"`
	Message messageElement `xml:"message"`
}

type tripElement struct {
	Origin       string       `xml:"origin,attr"`
	Destination  string       `xml:"destination,attr"`
	Fare         string       `xml:"fare,attr"`
	OrigTimeMin  string       `xml:"origTimeMin,attr"`
	OrigTimeDate string       `xml:"origTimeDate,attr"`
	DestTimeMin  string       `xml:"destTimeMin,attr"`
	DestTimeDate string       `xml:"destTimeDate,attr"`
	Legs         []legElement `xml:"leg"`
}

type legElement struct {
	Order            string `xml:"order,attr"`
	Origin           string `xml:"origin,attr"`
	Destination      string `xml:"destination,attr"`
	OrigTimeMin      string `xml:"origTimeMin,attr"`
	DestTimeMin      string `xml:"destTimeMin,attr"`
	Line             string `xml:"line,attr"`
	TrainHeadStation string `xml:"trainHeadStation,attr"`
}

type messageElement struct {
	Warning string `xml:"warning"`
	Error   string `xml:"error"`
}
