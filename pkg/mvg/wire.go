package mvg

import "errors"

// Wire types mirror the JSON payloads. Every key is a pointer so a missing
// required key can be told apart from a zero value; unknown keys are ignored.

// fieldCheck records the first required field found missing during conversion.
type fieldCheck struct {
	err error
}

func need[T any](c *fieldCheck, name string, v *T) T {
	if v == nil {
		if c.err == nil {
			c.err = missingField(name)
		}
		var zero T
		return zero
	}
	return *v
}

type departureWire struct {
	PlannedDepartureTime  *Timestamp `json:"plannedDepartureTime"`
	Realtime              *bool      `json:"realtime"`
	DelayInMinutes        *int       `json:"delayInMinutes"`
	RealtimeDepartureTime *Timestamp `json:"realtimeDepartureTime"`
	TransportType         *string    `json:"transportType"`
	Label                 *string    `json:"label"`
	Destination           *string    `json:"destination"`
	Cancelled             *bool      `json:"cancelled"`
	Sev                   *bool      `json:"sev"`
	Platform              *int       `json:"platform"`
	Messages              []string   `json:"messages"`
}

func (w departureWire) model() (Departure, error) {
	var c fieldCheck
	d := Departure{
		PlannedTime:       need(&c, "plannedDepartureTime", w.PlannedDepartureTime).Time,
		RealtimeTime:      need(&c, "realtimeDepartureTime", w.RealtimeDepartureTime).Time,
		IsRealtime:        need(&c, "realtime", w.Realtime),
		DelayMinutes:      w.DelayInMinutes,
		Label:             need(&c, "label", w.Label),
		TransportType:     need(&c, "transportType", w.TransportType),
		Destination:       need(&c, "destination", w.Destination),
		Cancelled:         need(&c, "cancelled", w.Cancelled),
		ServiceDisruption: need(&c, "sev", w.Sev),
		Platform:          w.Platform,
		Messages:          w.Messages,
	}
	return d, c.err
}

type connectionWire struct {
	Parts []connectionPartWire `json:"parts"`
}

func (w connectionWire) model() (Connection, error) {
	if len(w.Parts) == 0 {
		return Connection{}, errors.New("connection has no parts")
	}

	parts := make([]ConnectionPart, 0, len(w.Parts))
	for _, pw := range w.Parts {
		p, err := pw.model()
		if err != nil {
			return Connection{}, err
		}
		parts = append(parts, p)
	}
	return Connection{Parts: parts}, nil
}

type connectionPartWire struct {
	From                    *stopWire  `json:"from"`
	To                      *stopWire  `json:"to"`
	IntermediateStops       []stopWire `json:"intermediateStops"`
	Line                    *lineWire  `json:"line"`
	PathPolyline            *string    `json:"pathPolyline"`
	InterchangePathPolyline *string    `json:"interchangePathPolyline"`
	Messages                []string   `json:"messages"`
}

func (w connectionPartWire) model() (ConnectionPart, error) {
	var c fieldCheck
	from := need(&c, "from", w.From)
	to := need(&c, "to", w.To)
	line := need(&c, "line", w.Line)
	if c.err != nil {
		return ConnectionPart{}, c.err
	}

	p := ConnectionPart{
		PathPolyline:            w.PathPolyline,
		InterchangePathPolyline: w.InterchangePathPolyline,
		Messages:                w.Messages,
	}

	var err error
	if p.From, err = from.model(); err != nil {
		return ConnectionPart{}, err
	}
	if p.To, err = to.model(); err != nil {
		return ConnectionPart{}, err
	}
	if p.Line, err = line.model(); err != nil {
		return ConnectionPart{}, err
	}
	for _, sw := range w.IntermediateStops {
		s, err := sw.model()
		if err != nil {
			return ConnectionPart{}, err
		}
		p.IntermediateStops = append(p.IntermediateStops, s)
	}
	return p, nil
}

type stopWire struct {
	Latitude                *float64   `json:"latitude"`
	Longitude               *float64   `json:"longitude"`
	StationGlobalID         *string    `json:"stationGlobalId"`
	Name                    *string    `json:"name"`
	Place                   *string    `json:"place"`
	Platform                *int       `json:"platform"`
	PlannedDeparture        *Timestamp `json:"plannedDeparture"`
	DepartureDelayInMinutes *int       `json:"departureDelayInMinutes"`
	ArrivalDelayInMinutes   *int       `json:"arrivalDelayInMinutes"`
}

func (w stopWire) model() (Stop, error) {
	var c fieldCheck
	s := Stop{
		Latitude:              need(&c, "latitude", w.Latitude),
		Longitude:             need(&c, "longitude", w.Longitude),
		StationGlobalID:       need(&c, "stationGlobalId", w.StationGlobalID),
		Name:                  need(&c, "name", w.Name),
		Place:                 need(&c, "place", w.Place),
		Platform:              w.Platform,
		PlannedDeparture:      need(&c, "plannedDeparture", w.PlannedDeparture).Time,
		DepartureDelayMinutes: w.DepartureDelayInMinutes,
		ArrivalDelayMinutes:   w.ArrivalDelayInMinutes,
	}
	return s, c.err
}

type lineWire struct {
	Label         *string `json:"label"`
	TransportType *string `json:"transportType"`
	Destination   *string `json:"destination"`
	Network       *string `json:"network"`
	Sev           *bool   `json:"sev"`
}

func (w lineWire) model() (Line, error) {
	var c fieldCheck
	l := Line{
		Label:                  need(&c, "label", w.Label),
		TransportType:          need(&c, "transportType", w.TransportType),
		Destination:            need(&c, "destination", w.Destination),
		Network:                need(&c, "network", w.Network),
		ServesDisruptedService: need(&c, "sev", w.Sev),
	}
	return l, c.err
}

type notificationWire struct {
	Title             *string                 `json:"title"`
	Description       *string                 `json:"description"`
	Publication       *Timestamp              `json:"publication"`
	IncidentDurations *[]incidentWire         `json:"incidentDurations"`
	ValidFrom         *Timestamp              `json:"validFrom"`
	ValidTo           *Timestamp              `json:"validTo"`
	Type              *string                 `json:"type"`
	Provider          *string                 `json:"provider"`
	Lines             *[]notificationLineWire `json:"lines"`
	StationGlobalIDs  []string                `json:"stationGlobalIds"`
}

func (w notificationWire) model() (Notification, error) {
	var c fieldCheck
	n := Notification{
		Title:            need(&c, "title", w.Title),
		Description:      need(&c, "description", w.Description),
		Publication:      need(&c, "publication", w.Publication).Time,
		ValidFrom:        need(&c, "validFrom", w.ValidFrom).Time,
		ValidTo:          instant(w.ValidTo),
		Type:             need(&c, "type", w.Type),
		Provider:         w.Provider,
		StationGlobalIDs: w.StationGlobalIDs,
	}
	incidents := need(&c, "incidentDurations", w.IncidentDurations)
	lines := need(&c, "lines", w.Lines)
	if c.err != nil {
		return Notification{}, c.err
	}

	for _, iw := range incidents {
		from := iw.From
		if from == nil {
			return Notification{}, missingField("incidentDurations.from")
		}
		n.IncidentWindows = append(n.IncidentWindows, IncidentWindow{
			From: from.Time,
			To:   instant(iw.To),
		})
	}
	for _, lw := range lines {
		l, err := lw.model()
		if err != nil {
			return Notification{}, err
		}
		n.Lines = append(n.Lines, l)
	}
	return n, nil
}

type incidentWire struct {
	From *Timestamp `json:"from"`
	To   *Timestamp `json:"to"`
}

type notificationLineWire struct {
	Label         *string `json:"label"`
	TransportType *string `json:"transportType"`
	Sev           *bool   `json:"sev"`
}

func (w notificationLineWire) model() (NotificationLine, error) {
	var c fieldCheck
	l := NotificationLine{
		Label:                  need(&c, "label", w.Label),
		TransportType:          need(&c, "transportType", w.TransportType),
		ServesDisruptedService: need(&c, "sev", w.Sev),
	}
	return l, c.err
}
