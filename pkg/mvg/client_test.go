package mvg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient serves body for every request and points the package baseURL at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	originalBaseURL := baseURL
	baseURL = server.URL
	t.Cleanup(func() { baseURL = originalBaseURL })

	return NewClient()
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

const departuresJSON = `[
	{
		"plannedDepartureTime": 1700000000000,
		"realtime": true,
		"delayInMinutes": 0,
		"realtimeDepartureTime": 1700000000000,
		"transportType": "UBAHN",
		"label": "U6",
		"network": "swm",
		"trainType": "",
		"destination": "Klinikum Großhadern",
		"cancelled": false,
		"sev": false,
		"platform": 2,
		"messages": ["Aufzug außer Betrieb"],
		"bannerHash": "",
		"occupancy": "LOW",
		"stopPointGlobalId": "de:09162:6:52:52"
	},
	{
		"plannedDepartureTime": 1700000300000,
		"realtime": false,
		"realtimeDepartureTime": 1700000300000,
		"transportType": "BUS",
		"label": "58",
		"destination": "Hauptbahnhof",
		"cancelled": true,
		"sev": false,
		"somethingNew": {"nested": true}
	}
]`

func TestClient_FetchDepartures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departures", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "de:09162:6", q.Get("globalId"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "5", q.Get("offsetInMinutes"))
		assert.Equal(t, "UBAHN,REGIONAL_BUS,BUS,TRAM,SBAHN,SCHIFF", q.Get("transportTypes"))
		serveJSON(departuresJSON)(w, r)
	})

	deps, err := client.FetchDepartures(context.Background(), "de:09162:6", 5)
	require.NoError(t, err)
	require.Len(t, deps, 2)

	first := deps[0]
	assert.Equal(t, "U6", first.Label)
	assert.Equal(t, "Klinikum Großhadern", first.Destination)
	assert.True(t, first.IsRealtime)
	require.NotNil(t, first.DelayMinutes)
	assert.Equal(t, 0, *first.DelayMinutes)
	require.NotNil(t, first.Platform)
	assert.Equal(t, 2, *first.Platform)
	assert.Equal(t, []string{"Aufzug außer Betrieb"}, first.Messages)
	assert.True(t, first.PlannedTime.Equal(time.UnixMilli(1700000000000)))
	assert.Equal(t, time.Local, first.PlannedTime.Location())

	second := deps[1]
	assert.Nil(t, second.DelayMinutes, "absent delay must stay absent")
	assert.Nil(t, second.Platform)
	assert.True(t, second.Cancelled)
	assert.Empty(t, second.Messages)
}

func TestClient_FetchDepartures_MissingRequiredField(t *testing.T) {
	client := newTestClient(t, serveJSON(`[{"realtime": true, "label": "U3"}]`))

	_, err := client.FetchDepartures(context.Background(), "de:09162:6", 0)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestClient_FetchDepartures_Malformed(t *testing.T) {
	client := newTestClient(t, serveJSON(`{"not": "an array"`))

	_, err := client.FetchDepartures(context.Background(), "de:09162:6", 0)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "departures", decodeErr.Op)
}

func TestClient_StatusCodeIsNetworkError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.FetchNotifications(context.Background())

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, 1, attempts, "requests must not be retried")
}

const routesJSON = `[
	{
		"uniqueId": 1,
		"parts": [
			{
				"from": {
					"latitude": 48.14, "longitude": 11.56,
					"stationGlobalId": "de:09162:6", "stationDivaId": 6,
					"place": "München", "name": "Hauptbahnhof",
					"plannedDeparture": "2026-02-25T08:00:00+01:00",
					"departureDelayInMinutes": 2,
					"transportTypes": ["UBAHN"]
				},
				"to": {
					"latitude": 48.13, "longitude": 11.57,
					"stationGlobalId": "de:09162:2", "stationDivaId": 2,
					"place": "München", "name": "Marienplatz",
					"plannedDeparture": 1771923000000
				},
				"intermediateStops": [],
				"line": {"label": "S8", "transportType": "SBAHN", "destination": "Flughafen", "trainType": "", "network": "ddb", "sev": false},
				"pathPolyline": "abc",
				"messages": ["first"]
			},
			{
				"from": {
					"latitude": 48.13, "longitude": 11.57,
					"stationGlobalId": "de:09162:2",
					"place": "München", "name": "Marienplatz",
					"plannedDeparture": "2026-02-25T08:10:00+01:00"
				},
				"to": {
					"latitude": 48.12, "longitude": 11.58,
					"stationGlobalId": "de:09162:1",
					"place": "München", "name": "Sendlinger Tor",
					"plannedDeparture": "2026-02-25T08:25:00+01:00"
				},
				"line": {"label": "U6", "transportType": "UBAHN", "destination": "Klinikum", "network": "swm", "sev": false},
				"messages": ["second", "third"]
			}
		],
		"ticketingInformation": {"zones": [1]}
	}
]`

func TestClient_FetchRoutes(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	at := time.Date(2026, 2, 25, 9, 0, 0, 0, loc)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/routes", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "de:09162:6", q.Get("originStationGlobalId"))
		assert.Equal(t, "de:09162:1", q.Get("destinationStationGlobalId"))
		assert.Equal(t, "2026-02-25T08:00:00.000Z", q.Get("routingDateTime"))
		assert.Equal(t, "true", q.Get("routingDateTimeIsArrival"))
		assert.Equal(t, "UBAHN,TRAM,SBAHN", q.Get("transportTypes"))
		serveJSON(routesJSON)(w, r)
	})

	query := NewRouteQuery("de:09162:6", "de:09162:1")
	query.Time = at
	query.IsArrivalTime = true
	query.TransportTypes.Bus = false
	query.TransportTypes.TaxiOnCall = false

	conns, err := client.FetchRoutes(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, conns, 1)

	conn := conns[0]
	require.Len(t, conn.Parts, 2)
	assert.Equal(t, "Hauptbahnhof", conn.Origin().Name)
	assert.Equal(t, "Sendlinger Tor", conn.Destination().Name)
	require.NotNil(t, conn.Origin().DepartureDelayMinutes)
	assert.Equal(t, 2, *conn.Origin().DepartureDelayMinutes)
	assert.Nil(t, conn.Origin().ArrivalDelayMinutes)
	assert.Nil(t, conn.Parts[1].PathPolyline)
	require.NotNil(t, conn.Parts[0].PathPolyline)
	assert.Equal(t, "abc", *conn.Parts[0].PathPolyline)
	assert.Equal(t, "S8", conn.Parts[0].Line.Label)
	assert.True(t, conn.Parts[0].To.PlannedDeparture.Equal(time.UnixMilli(1771923000000)))
}

func TestClient_FetchRoutes_DefaultsToNow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		sent, err := time.Parse(time.RFC3339, q.Get("routingDateTime"))
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now(), sent, time.Minute)
		assert.Equal(t, "false", q.Get("routingDateTimeIsArrival"))
		assert.Equal(t, "UBAHN,BUS,TRAM,SBAHN,RUFTAXI", q.Get("transportTypes"))
		serveJSON(`[]`)(w, r)
	})

	conns, err := client.FetchRoutes(context.Background(), NewRouteQuery("a", "b"))
	require.NoError(t, err)
	assert.Empty(t, conns)
}

func TestClient_FetchRoutes_EmptyPartsIsDecodeError(t *testing.T) {
	client := newTestClient(t, serveJSON(`[{"uniqueId": 1, "parts": []}]`))

	_, err := client.FetchRoutes(context.Background(), NewRouteQuery("a", "b"))

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

const notificationsJSON = `[
	{
		"title": "Bauarbeiten",
		"description": "<p>Zwischen <b>Odeonsplatz</b> und Giselastraße</p>",
		"publication": 1700000000000,
		"publicationDuration": {"from": 1700000000000, "to": 1800000000000},
		"incidentDurations": [
			{"from": 1700000000000, "to": 1700500000000},
			{"from": 1701000000000}
		],
		"validFrom": 1700000000000,
		"type": "INCIDENT",
		"provider": "MVG",
		"links": [],
		"lines": [
			{"label": "U3", "transportType": "UBAHN", "network": "swm", "divaId": "010U3", "sev": false},
			{"label": "U6", "transportType": "UBAHN", "network": "swm", "divaId": "010U6", "sev": true}
		],
		"stationGlobalIds": ["de:09162:3"],
		"eventTypes": []
	}
]`

func TestClient_FetchNotifications(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		serveJSON(notificationsJSON)(w, r)
	})

	notes, err := client.FetchNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)

	n := notes[0]
	assert.Equal(t, "Bauarbeiten", n.Title)
	assert.Equal(t, "INCIDENT", n.Type)
	assert.Nil(t, n.ValidTo)
	require.Len(t, n.IncidentWindows, 2)
	require.NotNil(t, n.IncidentWindows[0].To)
	assert.Nil(t, n.IncidentWindows[1].To, "open-ended window must stay open")
	require.Len(t, n.Lines, 2)
	assert.True(t, n.Lines[1].ServesDisruptedService)
	assert.Equal(t, []string{"de:09162:3"}, n.StationGlobalIDs)

	window := n.Window()
	assert.True(t, window.From.Equal(time.UnixMilli(1700000000000)))
}

func TestNotification_WindowFallsBackToValidity(t *testing.T) {
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	n := Notification{
		ValidFrom: time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local),
		ValidTo:   &to,
	}

	window := n.Window()
	assert.Equal(t, n.ValidFrom, window.From)
	assert.Equal(t, &to, window.To)
}
