package mvg

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// ResolveStation searches for query and returns the first station among the
// results, skipping higher ranked addresses and points of interest.
func (c *Client) ResolveStation(ctx context.Context, query string) (Station, error) {
	locations, err := c.FetchLocations(ctx, query)
	if err != nil {
		return Station{}, err
	}

	station, ok := FirstStation(locations)
	if !ok {
		return Station{}, fmt.Errorf("%w for %q", ErrNoStationFound, query)
	}
	log.Debug().Str("query", query).Str("station", station.GlobalID).Msg("resolved station")
	return station, nil
}

// ResolveStationID is ResolveStation reduced to the station's global id.
func (c *Client) ResolveStationID(ctx context.Context, query string) (string, error) {
	station, err := c.ResolveStation(ctx, query)
	if err != nil {
		return "", err
	}
	return station.GlobalID, nil
}

// ResolveStationPair resolves origin and destination concurrently. The first
// failure cancels the other lookup and is returned on its own.
func (c *Client) ResolveStationPair(ctx context.Context, from, to string) (Station, Station, error) {
	var origin, destination Station

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		s, err := c.ResolveStation(ctx, from)
		origin = s
		return err
	})
	p.Go(func(ctx context.Context) error {
		s, err := c.ResolveStation(ctx, to)
		destination = s
		return err
	})

	if err := p.Wait(); err != nil {
		return Station{}, Station{}, err
	}
	return origin, destination, nil
}
