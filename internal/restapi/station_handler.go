package restapi

import (
	"net/http"

	"bartd.opentransit.org/internal/models"
	"bartd.opentransit.org/internal/utils"
)

func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	abbr := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateStationAbbr(abbr); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	detail, err := api.Stations.StationDetail(abbr)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(detail)
	api.sendResponse(w, r, response)
}
