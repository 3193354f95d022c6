package mvg

import "time"

// Departure is a single upcoming departure at a station.
type Departure struct {
	PlannedTime       time.Time
	RealtimeTime      time.Time
	IsRealtime        bool
	DelayMinutes      *int // nil when the service reports no delay data
	Label             string
	TransportType     string
	Destination       string
	Cancelled         bool
	ServiceDisruption bool
	Platform          *int
	Messages          []string
}

// Connection is one itinerary. Parts is never empty.
type Connection struct {
	Parts []ConnectionPart
}

// Origin returns the first stop of the itinerary.
func (c Connection) Origin() Stop {
	return c.Parts[0].From
}

// Destination returns the last stop of the itinerary.
func (c Connection) Destination() Stop {
	return c.Parts[len(c.Parts)-1].To
}

// ConnectionPart is one leg ridden on a single line.
type ConnectionPart struct {
	From                    Stop
	To                      Stop
	IntermediateStops       []Stop
	Line                    Line
	PathPolyline            *string
	InterchangePathPolyline *string
	Messages                []string
}

// Stop is a point of a connection part.
type Stop struct {
	Latitude              float64
	Longitude             float64
	StationGlobalID       string
	Name                  string
	Place                 string
	Platform              *int
	PlannedDeparture      time.Time
	DepartureDelayMinutes *int
	ArrivalDelayMinutes   *int
}

// Line identifies the vehicle a part is ridden on.
type Line struct {
	Label                  string
	TransportType          string
	Destination            string
	Network                string
	ServesDisruptedService bool
}

// Notification is a service notice published by the operator.
type Notification struct {
	Title            string
	Description      string // HTML
	Publication      time.Time
	IncidentWindows  []IncidentWindow
	ValidFrom        time.Time
	ValidTo          *time.Time
	Type             string
	Provider         *string
	Lines            []NotificationLine
	StationGlobalIDs []string
}

// Window returns the incident window shown for a notification: the first
// incident window, or the validity period when none was published.
func (n Notification) Window() IncidentWindow {
	if len(n.IncidentWindows) > 0 {
		return n.IncidentWindows[0]
	}
	return IncidentWindow{From: n.ValidFrom, To: n.ValidTo}
}

// IncidentWindow is a period a notification applies to. A nil To means ongoing.
type IncidentWindow struct {
	From time.Time
	To   *time.Time
}

// NotificationLine is a line affected by a notification.
type NotificationLine struct {
	Label                  string
	TransportType          string
	ServesDisruptedService bool
}
