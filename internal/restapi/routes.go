package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Routes returns the handler tree for the facade's query API. Every
// endpoint sits behind the API key check and request logging.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.Handler(http.MethodGet, "/api/bart/stations.json", validateAPIKey(api, api.stationsHandler))
	router.Handler(http.MethodGet, "/api/bart/station/:id", validateAPIKey(api, api.stationHandler))
	router.Handler(http.MethodGet, "/api/bart/stations-for-location.json", validateAPIKey(api, api.stationsForLocationHandler))
	router.Handler(http.MethodGet, "/api/bart/advisories.json", validateAPIKey(api, api.advisoriesHandler))
	router.Handler(http.MethodGet, "/api/bart/elevator-advisories.json", validateAPIKey(api, api.elevatorAdvisoriesHandler))
	router.Handler(http.MethodGet, "/api/bart/train-count.json", validateAPIKey(api, api.trainCountHandler))
	router.Handler(http.MethodGet, "/api/bart/trip.json", validateAPIKey(api, api.tripHandler))

	return NewRequestLoggingMiddleware(api.Logger)(router)
}
