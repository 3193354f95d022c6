package mvg

import "strings"

// TransportType is a product filter understood by the service.
type TransportType string

const (
	Underground TransportType = "UBAHN"
	Suburban    TransportType = "SBAHN"
	Bus         TransportType = "BUS"
	RegionalBus TransportType = "REGIONAL_BUS"
	Tram        TransportType = "TRAM"
	Ferry       TransportType = "SCHIFF"
	TaxiOnCall  TransportType = "RUFTAXI"
)

// departureTransportTypes is the fixed filter sent with every departure query.
var departureTransportTypes = []TransportType{Underground, RegionalBus, Bus, Tram, Suburban, Ferry}

// RouteTransportTypes selects which products a route query may use.
type RouteTransportTypes struct {
	Underground bool
	Bus         bool
	Tram        bool
	Suburban    bool
	TaxiOnCall  bool
}

// AllRouteTransportTypes enables every product.
func AllRouteTransportTypes() RouteTransportTypes {
	return RouteTransportTypes{
		Underground: true,
		Bus:         true,
		Tram:        true,
		Suburban:    true,
		TaxiOnCall:  true,
	}
}

// List returns the enabled products in the order the service expects them.
func (r RouteTransportTypes) List() []TransportType {
	var types []TransportType
	if r.Underground {
		types = append(types, Underground)
	}
	if r.Bus {
		types = append(types, Bus)
	}
	if r.Tram {
		types = append(types, Tram)
	}
	if r.Suburban {
		types = append(types, Suburban)
	}
	if r.TaxiOnCall {
		types = append(types, TaxiOnCall)
	}
	return types
}

func joinTransportTypes(types []TransportType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
