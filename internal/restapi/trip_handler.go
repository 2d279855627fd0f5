package restapi

import (
	"net/http"

	"bartd.opentransit.org/internal/models"
	"bartd.opentransit.org/internal/utils"
)

func (api *RestAPI) tripHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	orig, fieldErrors := utils.RequireParam(queryParams, "orig", nil)
	dest, _ := utils.RequireParam(queryParams, "dest", fieldErrors)

	if len(fieldErrors) == 0 {
		if err := utils.ValidateStationAbbr(orig); err != nil {
			fieldErrors["orig"] = append(fieldErrors["orig"], err.Error())
		}
		if err := utils.ValidateStationAbbr(dest); err != nil {
			fieldErrors["dest"] = append(fieldErrors["dest"], err.Error())
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	trip, err := api.Stations.PlanTrip(r.Context(), orig, dest)
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(trip)
	api.sendResponse(w, r, response)
}
