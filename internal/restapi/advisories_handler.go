package restapi

import (
	"net/http"

	"bartd.opentransit.org/internal/models"
)

// advisoriesHandler answers with live service announcements, bypassing
// the snapshot cache.
func (api *RestAPI) advisoriesHandler(w http.ResponseWriter, r *http.Request) {
	advisories, err := api.Stations.ServiceAdvisories(r.Context())
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(advisories)
	api.sendResponse(w, r, response)
}

// elevatorAdvisoriesHandler serves the cached elevator advisory
// snapshot, refreshed on its own shorter cadence.
func (api *RestAPI) elevatorAdvisoriesHandler(w http.ResponseWriter, r *http.Request) {
	advisories, err := api.Stations.GetElevatorAdvisories()
	if err != nil {
		api.queryErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(advisories)
	api.sendResponse(w, r, response)
}
