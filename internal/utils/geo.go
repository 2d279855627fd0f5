package utils

import "math"

const (
	earthRadiusKm     = 6371
	milesPerKilometer = 0.621371
)

// Haversine calculates the great-circle distance in kilometers between
// two lat/lon points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// MilesFromKilometers converts kilometers to miles.
func MilesFromKilometers(km float64) float64 {
	return km * milesPerKilometer
}
