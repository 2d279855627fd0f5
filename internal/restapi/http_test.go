package restapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"bartd.opentransit.org/internal/app"
	"bartd.opentransit.org/internal/logging"
	"bartd.opentransit.org/internal/models"
	"bartd.opentransit.org/internal/stations"
)

// newFakeUpstream serves minimal canned XML for every upstream endpoint
// the manager touches.
func newFakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/stn.aspx", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<root><stations>` +
			`<station><name>12th St. Oakland City Center</name><abbr>12TH</abbr><gtfs_latitude>37.803768</gtfs_latitude><gtfs_longitude>-122.271450</gtfs_longitude></station>` +
			`<station><name>Coliseum/Oakland Airport</name><abbr>COLS</abbr><gtfs_latitude>37.754006</gtfs_latitude><gtfs_longitude>-122.197273</gtfs_longitude></station>` +
			`<station><name>Embarcadero</name><abbr>EMBR</abbr><gtfs_latitude>37.792874</gtfs_latitude><gtfs_longitude>-122.397020</gtfs_longitude></station>` +
			`</stations></root>`))
	})

	mux.HandleFunc("/stninfo.aspx", func(w http.ResponseWriter, r *http.Request) {
		abbr := r.URL.Query().Get("orig")
		_, _ = fmt.Fprintf(w, `<root><stations><station><name>%s</name><abbr>%s</abbr><address>1 Main St</address></station></stations></root>`, abbr, abbr)
	})

	mux.HandleFunc("/stnaccess.aspx", func(w http.ResponseWriter, r *http.Request) {
		abbr := r.URL.Query().Get("orig")
		_, _ = fmt.Fprintf(w, `<root><stations><station parking_flag="1"><name>%s</name><abbr>%s</abbr></station></stations></root>`, abbr, abbr)
	})

	mux.HandleFunc("/bsa.aspx", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cmd") == "count" {
			_, _ = w.Write([]byte(`<root><traincount>48</traincount></root>`))
			return
		}
		_, _ = w.Write([]byte(`<root><bsa><description>No delays reported.</description></bsa></root>`))
	})

	mux.HandleFunc("/sched.aspx", func(w http.ResponseWriter, r *http.Request) {
		orig := r.URL.Query().Get("orig")
		dest := r.URL.Query().Get("dest")
		_, _ = fmt.Fprintf(w, `<root><schedule><request><trip origin="%s" destination="%s" fare="3.70" origTimeMin="8:00 AM" origTimeDate="08/29/2026" destTimeMin="8:35 AM" destTimeDate="08/29/2026"><leg order="1" origin="%s" destination="%s" origTimeMin="8:00 AM" destTimeMin="8:35 AM" line="ROUTE 1" trainHeadStation="SFIA"/></trip></request></schedule></root>`, orig, dest, orig, dest)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// createTestApp creates an Application backed by a manager that has
// refreshed against the fake upstream.
func createTestApp(t *testing.T) *app.Application {
	t.Helper()

	upstream := newFakeUpstream(t)

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	manager, err := stations.InitManager(stations.Config{
		BaseURL: upstream.URL,
		APIKey:  "UPSTREAM",
	}, logger)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		Logger:   logger,
		Stations: manager,
	}
}

// createNotReadyTestApp creates an Application whose manager never saw a
// successful refresh.
func createNotReadyTestApp(t *testing.T) *app.Application {
	t.Helper()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	manager, err := stations.InitManager(stations.Config{
		BaseURL: broken.URL,
		APIKey:  "UPSTREAM",
	}, logger)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	return &app.Application{
		Config: app.Config{
			Env:     "test",
			ApiKeys: []string{"TEST"},
		},
		Logger:   logger,
		Stations: manager,
	}
}

func serveAppAndRetrieveEndpoint(t *testing.T, application *app.Application, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	api := NewRestAPI(application)
	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
