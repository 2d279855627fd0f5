package utils

import (
	"errors"
	"regexp"
)

// Station abbreviations are short upper/lowercase codes like "COLS" or
// "12th".
var validAbbrPattern = regexp.MustCompile(`^[a-zA-Z0-9]{2,6}$`)

// ValidateStationAbbr validates that a station abbreviation is safe and
// within reasonable limits.
func ValidateStationAbbr(abbr string) error {
	if abbr == "" {
		return errors.New("station abbreviation cannot be empty")
	}

	if !validAbbrPattern.MatchString(abbr) {
		return errors.New("station abbreviation contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateLocationParams validates a complete set of location parameters
func ValidateLocationParams(lat, lon float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}

	if err := ValidateLongitude(lon); err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}

	return fieldErrors
}
