// Package maps knows the published network maps and opens them in a browser.
package maps

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// Map is a static network map document.
type Map struct {
	Name string
	URL  string
}

var (
	Region = Map{Name: "region", URL: "https://www.mvg.de/dam/jcr:88249232-e41c-417b-b976-1945c5ade867/netz-tarifplan.pdf"}
	Tram   = Map{Name: "tram", URL: "https://www.mvg.de/dam/jcr:1164570c-cc5f-4b6d-a007-e99c32b00905/tramnetz.pdf"}
	Night  = Map{Name: "night", URL: "https://www.mvg.de/dam/jcr:fe99cd93-ef1c-483c-a715-f421da96382b/nachtliniennetz.pdf"}
)

var openURL = browser.OpenURL

// Select returns the requested maps in a fixed order. Requesting none
// selects the regional map.
func Select(region, tram, night bool) []Map {
	if !region && !tram && !night {
		return []Map{Region}
	}

	var selected []Map
	if region {
		selected = append(selected, Region)
	}
	if tram {
		selected = append(selected, Tram)
	}
	if night {
		selected = append(selected, Night)
	}
	return selected
}

// Open opens every map, stopping at the first failure.
func Open(maps []Map) error {
	for _, m := range maps {
		log.Debug().Str("map", m.Name).Str("url", m.URL).Msg("opening map")
		if err := openURL(m.URL); err != nil {
			return fmt.Errorf("could not open %s map: %w", m.Name, err)
		}
	}
	return nil
}
