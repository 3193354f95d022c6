package mvg

// Location is a result of a location search. It is one of Station, Address,
// PointOfInterest or UnknownLocation.
type Location interface {
	// DisplayName is the plain name shown for the location.
	DisplayName() string
	isLocation()
}

// Station is a transit stop with a stable global id.
type Station struct {
	GlobalID       string
	Name           string
	Place          string
	Latitude       float64
	Longitude      float64
	TransportTypes []string
}

// Address is a street address; it cannot be used as a query endpoint.
type Address struct {
	Name   string
	Place  string
	Street *string
}

// PointOfInterest is a named place such as a museum or a park.
type PointOfInterest struct {
	Name  string
	Place string
}

// UnknownLocation is any result whose type tag is not recognised.
type UnknownLocation struct {
	Type string
	Name string
}

func (Station) isLocation()         {}
func (Address) isLocation()         {}
func (PointOfInterest) isLocation() {}
func (UnknownLocation) isLocation() {}

func (s Station) DisplayName() string         { return s.Name }
func (a Address) DisplayName() string         { return a.Name }
func (p PointOfInterest) DisplayName() string { return p.Name }
func (u UnknownLocation) DisplayName() string { return u.Name }

// AsStation returns the station held by loc, if any.
func AsStation(loc Location) (Station, bool) {
	s, ok := loc.(Station)
	return s, ok
}

// FirstStation returns the first station in locs regardless of its rank.
// Search results often rank addresses or POIs above the station itself.
func FirstStation(locs []Location) (Station, bool) {
	for _, loc := range locs {
		if s, ok := AsStation(loc); ok {
			return s, true
		}
	}
	return Station{}, false
}

type locationWire struct {
	Type           *string  `json:"type"`
	GlobalID       *string  `json:"globalId"`
	Name           *string  `json:"name"`
	Place          *string  `json:"place"`
	Street         *string  `json:"street"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	TransportTypes []string `json:"transportTypes"`
}

func (w locationWire) model() (Location, error) {
	var c fieldCheck
	kind := need(&c, "type", w.Type)
	if c.err != nil {
		return nil, c.err
	}

	switch kind {
	case "STATION":
		s := Station{
			GlobalID:       need(&c, "globalId", w.GlobalID),
			Name:           need(&c, "name", w.Name),
			Place:          need(&c, "place", w.Place),
			Latitude:       need(&c, "latitude", w.Latitude),
			Longitude:      need(&c, "longitude", w.Longitude),
			TransportTypes: w.TransportTypes,
		}
		return s, c.err
	case "ADDRESS":
		a := Address{
			Name:   need(&c, "name", w.Name),
			Place:  need(&c, "place", w.Place),
			Street: w.Street,
		}
		return a, c.err
	case "POI":
		p := PointOfInterest{
			Name:  need(&c, "name", w.Name),
			Place: need(&c, "place", w.Place),
		}
		return p, c.err
	default:
		u := UnknownLocation{Type: kind}
		if w.Name != nil {
			u.Name = *w.Name
		}
		return u, nil
	}
}
