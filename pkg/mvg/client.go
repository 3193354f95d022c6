package mvg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

var baseURL = "https://www.mvg.de/api/bgw-pt/v3"

// DepartureLimit is the number of departures requested per query.
const DepartureLimit = 10

// routingTimeLayout is RFC 3339 with millisecond precision.
const routingTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Client talks to the MVG passenger information API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client for the public API endpoint.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// WithBaseURL points the client at another deployment of the API.
func (c *Client) WithBaseURL(u string) *Client {
	if u != "" {
		c.baseURL = u
	}
	return c
}

// getJSON performs a single GET and decodes the body into out. There is no retry.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	req.Header.Set("User-Agent", "mvg-cli/1.0 (https://github.com/matkrin/mvg-cli)")
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("url", reqURL).Msg("requesting")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// FetchLocations runs a free-text location search. Results keep the
// service's ranking and may mix stations, addresses and points of interest.
func (c *Client) FetchLocations(ctx context.Context, query string) ([]Location, error) {
	var wire []locationWire
	if err := c.getJSON(ctx, "locations", "/locations", url.Values{"query": {query}}, &wire); err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(wire))
	for _, w := range wire {
		loc, err := w.model()
		if err != nil {
			return nil, &DecodeError{Op: "locations", Err: err}
		}
		locations = append(locations, loc)
	}

	log.Debug().Str("query", query).Int("count", len(locations)).Msg("decoded locations")
	return locations, nil
}

// FetchDepartures gets the next departures at a station, starting
// offsetMinutes into the future.
func (c *Client) FetchDepartures(ctx context.Context, stationID string, offsetMinutes int) ([]Departure, error) {
	query := url.Values{
		"globalId":        {stationID},
		"limit":           {strconv.Itoa(DepartureLimit)},
		"offsetInMinutes": {strconv.Itoa(offsetMinutes)},
		"transportTypes":  {joinTransportTypes(departureTransportTypes)},
	}

	var wire []departureWire
	if err := c.getJSON(ctx, "departures", "/departures", query, &wire); err != nil {
		return nil, err
	}

	departures := make([]Departure, 0, len(wire))
	for _, w := range wire {
		d, err := w.model()
		if err != nil {
			return nil, &DecodeError{Op: "departures", Err: err}
		}
		departures = append(departures, d)
	}

	log.Debug().Str("station", stationID).Int("count", len(departures)).Msg("decoded departures")
	return departures, nil
}

// RouteQuery describes a connection search. A zero Time means now.
type RouteQuery struct {
	OriginID       string
	DestinationID  string
	Time           time.Time
	IsArrivalTime  bool
	TransportTypes RouteTransportTypes
}

// NewRouteQuery returns a departure-time query for now using every product.
func NewRouteQuery(originID, destinationID string) RouteQuery {
	return RouteQuery{
		OriginID:       originID,
		DestinationID:  destinationID,
		TransportTypes: AllRouteTransportTypes(),
	}
}

// FetchRoutes plans connections between two stations.
func (c *Client) FetchRoutes(ctx context.Context, q RouteQuery) ([]Connection, error) {
	routingTime := q.Time
	if routingTime.IsZero() {
		routingTime = time.Now()
	}

	query := url.Values{
		"originStationGlobalId":      {q.OriginID},
		"destinationStationGlobalId": {q.DestinationID},
		"routingDateTime":            {routingTime.UTC().Format(routingTimeLayout)},
		"routingDateTimeIsArrival":   {strconv.FormatBool(q.IsArrivalTime)},
		"transportTypes":             {joinTransportTypes(q.TransportTypes.List())},
	}

	var wire []connectionWire
	if err := c.getJSON(ctx, "routes", "/routes", query, &wire); err != nil {
		return nil, err
	}

	connections := make([]Connection, 0, len(wire))
	for _, w := range wire {
		conn, err := w.model()
		if err != nil {
			return nil, &DecodeError{Op: "routes", Err: err}
		}
		connections = append(connections, conn)
	}

	log.Debug().Str("from", q.OriginID).Str("to", q.DestinationID).Int("count", len(connections)).Msg("decoded connections")
	return connections, nil
}

// FetchNotifications returns all current and upcoming service notices.
func (c *Client) FetchNotifications(ctx context.Context) ([]Notification, error) {
	var wire []notificationWire
	if err := c.getJSON(ctx, "notifications", "/messages", nil, &wire); err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(wire))
	for _, w := range wire {
		n, err := w.model()
		if err != nil {
			return nil, &DecodeError{Op: "notifications", Err: err}
		}
		notifications = append(notifications, n)
	}

	log.Debug().Int("count", len(notifications)).Msg("decoded notifications")
	return notifications, nil
}
