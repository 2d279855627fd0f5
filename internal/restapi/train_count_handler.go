package restapi

import (
	"net/http"

	"bartd.opentransit.org/internal/models"
)

func (api *RestAPI) trainCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := api.Stations.TrainCount(r.Context())
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	entry := map[string]int{"trainCount": count}
	response := models.NewEntryResponse(entry)
	api.sendResponse(w, r, response)
}
