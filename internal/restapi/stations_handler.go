package restapi

import (
	"net/http"

	"bartd.opentransit.org/internal/models"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stationList, err := api.Stations.GetStations()
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(stationList)
	api.sendResponse(w, r, response)
}
