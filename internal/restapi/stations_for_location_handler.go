package restapi

import (
	"net/http"

	"bartd.opentransit.org/internal/models"
	"bartd.opentransit.org/internal/utils"
)

func (api *RestAPI) stationsForLocationHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	lat, fieldErrors := utils.ParseFloatParam(queryParams, "lat", nil)
	lon, _ := utils.ParseFloatParam(queryParams, "lon", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	locationErrors := utils.ValidateLocationParams(lat, lon)
	if len(locationErrors) > 0 {
		api.validationErrorResponse(w, r, locationErrors)
		return
	}

	station, distanceMiles, err := api.Stations.NearestStation(lat, lon)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(models.NearbyStation{
		Station:       station,
		DistanceMiles: distanceMiles,
	})
	api.sendResponse(w, r, response)
}
