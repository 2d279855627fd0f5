package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"bartd.opentransit.org/internal/bart"
	"bartd.opentransit.org/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response with the required format
// for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Code        int    `json:"code"`
		CurrentTime int64  `json:"currentTime"`
		Text        string `json:"text"`
		Version     int    `json:"version"`
	}{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1, // Note: This is version 1, not 2 as in a successful response. Probably a mistake, but back-compat.
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)

	response := models.NewResponse(http.StatusInternalServerError, nil, "internal server error")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// notReadyResponse sends a 503 envelope for queries against a snapshot
// slot that has not seen a successful refresh yet.
func (api *RestAPI) notReadyResponse(w http.ResponseWriter, r *http.Request) {
	response := models.NewResponse(http.StatusServiceUnavailable, nil, "station data not ready")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode not ready response", "error", err)
	}
}

// upstreamErrorResponse sends a 502 envelope for transport or parse
// failures on live (uncached) upstream queries.
func (api *RestAPI) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("upstream query failed", "error", err, "path", r.URL.Path)

	response := models.NewResponse(http.StatusBadGateway, nil, "upstream transit API unavailable")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode upstream error response", "error", encoderErr)
	}
}

// queryErrorResponse maps a query error from the stations manager onto
// the right HTTP envelope.
func (api *RestAPI) queryErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *bart.NotFoundError
	var transport *bart.TransportError
	var parse *bart.ParseError

	switch {
	case errors.Is(err, bart.ErrNotReady):
		api.notReadyResponse(w, r)
	case errors.As(err, &notFound):
		api.sendNotFound(w, r)
	case errors.As(err, &transport), errors.As(err, &parse):
		api.upstreamErrorResponse(w, r, err)
	default:
		api.serverErrorResponse(w, r, err)
	}
}
