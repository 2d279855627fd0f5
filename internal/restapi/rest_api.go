// Package restapi exposes the station facade's query API over HTTP.
package restapi

import (
	"bartd.opentransit.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
	}
}
