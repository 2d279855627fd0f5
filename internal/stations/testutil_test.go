package stations

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// fakeStation describes one station served by the fake upstream.
type fakeStation struct {
	name string
	abbr string
	lat  float64
	lon  float64
}

var defaultFakeStations = []fakeStation{
	{name: "12th St. Oakland City Center", abbr: "12TH", lat: 37.803768, lon: -122.271450},
	{name: "Coliseum/Oakland Airport", abbr: "COLS", lat: 37.754006, lon: -122.197273},
	{name: "Embarcadero", abbr: "EMBR", lat: 37.792874, lon: -122.397020},
}

// fakeUpstream serves canned XML in the upstream API's shapes. Failure
// modes can be toggled between requests to exercise refresh behavior.
type fakeUpstream struct {
	Server *httptest.Server

	mu          sync.Mutex
	stations    []fakeStation
	failList    bool
	failInfo    map[string]bool
	failAccess  map[string]bool
	infoDelay   time.Duration
	advisoryXML string
}

func newFakeUpstream(stations []fakeStation) *fakeUpstream {
	if stations == nil {
		stations = defaultFakeStations
	}
	f := &fakeUpstream{
		stations:   stations,
		failInfo:   map[string]bool{},
		failAccess: map[string]bool{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/stn.aspx", f.handleStationList)
	mux.HandleFunc("/stninfo.aspx", f.handleStationInfo)
	mux.HandleFunc("/stnaccess.aspx", f.handleStationAccess)
	mux.HandleFunc("/bsa.aspx", f.handleBSA)
	mux.HandleFunc("/sched.aspx", f.handleSchedule)
	f.Server = httptest.NewServer(mux)
	return f
}

func (f *fakeUpstream) Close() {
	f.Server.Close()
}

func (f *fakeUpstream) setFailList(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failList = fail
}

func (f *fakeUpstream) setFailInfo(abbr string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failInfo[abbr] = fail
}

func (f *fakeUpstream) setFailAccess(abbr string, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAccess[abbr] = fail
}

func (f *fakeUpstream) setInfoDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.infoDelay = d
}

func (f *fakeUpstream) setAdvisoryXML(xml string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advisoryXML = xml
}

func (f *fakeUpstream) handleStationList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failList {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body := "<?xml version=\"1.0\" encoding=\"utf-8\"?><root><stations>"
	for _, st := range f.stations {
		body += fmt.Sprintf(
			"<station><name> %s </name><abbr>%s</abbr><gtfs_latitude>%f</gtfs_latitude><gtfs_longitude>%f</gtfs_longitude><address>1 Main St</address><city>Oakland</city><county>alameda</county><state>CA</state><zipcode>94612</zipcode></station>",
			st.name, st.abbr, st.lat, st.lon)
	}
	body += "</stations><message></message></root>"
	writeXML(w, body)
}

func (f *fakeUpstream) handleStationInfo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	abbr := r.URL.Query().Get("orig")
	fail := f.failInfo[abbr]
	delay := f.infoDelay
	station, ok := f.findStation(abbr)
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if fail || !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body := fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"utf-8\"?><root><stations><station><name> %s </name><abbr>%s</abbr><gtfs_latitude>%f</gtfs_latitude><gtfs_longitude>%f</gtfs_longitude><address>1 Main St</address><city>Oakland</city><county>alameda</county><state>CA</state><zipcode>94612</zipcode><north_platforms><platform>1</platform></north_platforms><south_platforms><platform>2</platform></south_platforms><platform_info>Island platform</platform_info><intro> Station intro. </intro><cross_street>Broadway</cross_street><food>Yes</food><shopping>Yes</shopping><attraction>None</attraction></station></stations><message></message></root>",
		station.name, station.abbr, station.lat, station.lon)
	writeXML(w, body)
}

func (f *fakeUpstream) handleStationAccess(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	abbr := r.URL.Query().Get("orig")
	fail := f.failAccess[abbr]
	station, ok := f.findStation(abbr)
	f.mu.Unlock()

	if fail || !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body := fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"utf-8\"?><root><stations><station parking_flag=\"1\" bike_flag=\"1\" bike_station_flag=\"0\" locker_flag=\"1\"><name> %s </name><abbr>%s</abbr><entering> Accessible entrance. </entering><exiting> Accessible exit. </exiting><parking>Daily fee</parking><lockers>Keyed</lockers><bike_station_text></bike_station_text></station></stations><message></message></root>",
		station.name, station.abbr)
	writeXML(w, body)
}

func (f *fakeUpstream) handleBSA(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	override := f.advisoryXML
	f.mu.Unlock()

	switch r.URL.Query().Get("cmd") {
	case "count":
		writeXML(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?><root><traincount>48</traincount><message></message></root>")
	default:
		if override != "" {
			writeXML(w, override)
			return
		}
		writeXML(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?><root><bsa><station>BART</station><type>DELAY</type><description> No delays reported. </description></bsa><message></message></root>")
	}
}

func (f *fakeUpstream) handleSchedule(w http.ResponseWriter, r *http.Request) {
	orig := r.URL.Query().Get("orig")
	dest := r.URL.Query().Get("dest")

	body := fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"utf-8\"?><root><schedule><date>08/29/2026</date><request><trip origin=\"%s\" destination=\"%s\" fare=\"3.70\" origTimeMin=\"8:00 AM\" origTimeDate=\"08/29/2026\" destTimeMin=\"8:35 AM\" destTimeDate=\"08/29/2026\"><leg order=\"1\" origin=\"%s\" destination=\"%s\" origTimeMin=\"8:00 AM\" destTimeMin=\"8:35 AM\" line=\"ROUTE 1\" trainHeadStation=\"SFIA\"/></trip></request></schedule><message></message></root>",
		orig, dest, orig, dest)
	writeXML(w, body)
}

func (f *fakeUpstream) findStation(abbr string) (fakeStation, bool) {
	for _, st := range f.stations {
		if st.abbr == abbr {
			return st, true
		}
	}
	return fakeStation{}, false
}

func writeXML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write([]byte(body))
}
