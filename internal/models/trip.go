package models

// Leg is one segment of a planned trip. OriginName and DestinationName
// are resolved against the station list snapshot; when the abbreviation
// is unknown there, the abbreviation itself is carried through.
type Leg struct {
	Order            int    `json:"order"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	OriginName       string `json:"originName"`
	DestinationName  string `json:"destinationName"`
	DepartTime       string `json:"departTime"`
	ArriveTime       string `json:"arriveTime"`
	Line             string `json:"line"`
	TrainHeadStation string `json:"trainHeadStation"`
}

// Trip is a planned connection between two stations. It is computed per
// query from a live schedule response and never cached.
type Trip struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginName      string `json:"originName"`
	DestinationName string `json:"destinationName"`
	Fare            string `json:"fare"`
	DepartTime      string `json:"departTime"`
	ArriveTime      string `json:"arriveTime"`
	Date            string `json:"date"`
	DurationMinutes int    `json:"durationMinutes"`
	Legs            []Leg  `json:"legs"`
}
