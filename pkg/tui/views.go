package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/matkrin/mvg-cli/pkg/badge"
	"github.com/matkrin/mvg-cli/pkg/exporter"
	"github.com/matkrin/mvg-cli/pkg/mvg"
	"github.com/matkrin/mvg-cli/pkg/schedule"
	"github.com/rs/zerolog/log"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	placeStyle = lipgloss.NewStyle().Italic(true)
)

// RoutesRequest holds the inputs of a connection search.
type RoutesRequest struct {
	From           string
	To             string
	Time           string // HH:MM, empty means now
	Arrival        bool
	TransportTypes mvg.RouteTransportTypes
	ExportPath     string
}

// ParseClock interprets an HH:MM string as that wall-clock time on now's date.
func ParseClock(s string, now time.Time) (time.Time, error) {
	clock, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

// stationLabel renders a station as "name, place" with the name in bold and
// the place in italics.
func stationLabel(loc mvg.Location) (string, error) {
	s, ok := mvg.AsStation(loc)
	if !ok || s.Name == "" {
		return "", fmt.Errorf("%w for %s", mvg.ErrNoStationName, loc.DisplayName())
	}
	return nameStyle.Render(s.Name) + ", " + placeStyle.Render(s.Place), nil
}

func newProjector() *schedule.Projector {
	return schedule.NewProjector(badge.Default(), lipgloss.DefaultRenderer())
}

// ShowRoutes resolves both stations, plans connections and prints them.
func ShowRoutes(ctx context.Context, client *mvg.Client, req RoutesRequest) error {
	if req.Arrival && req.Time == "" {
		return errors.New("an arrival time requires --time")
	}

	query := mvg.RouteQuery{IsArrivalTime: req.Arrival, TransportTypes: req.TransportTypes}
	if req.Time != "" {
		t, err := ParseClock(req.Time, time.Now())
		if err != nil {
			return err
		}
		query.Time = t
	}

	var from, to mvg.Station
	var conns []mvg.Connection
	var err error

	_ = spinner.New().
		Title("Fetching...").
		Action(func() {
			from, to, err = client.ResolveStationPair(ctx, req.From, req.To)
			if err != nil {
				return
			}
			query.OriginID = from.GlobalID
			query.DestinationID = to.GlobalID
			conns, err = client.FetchRoutes(ctx, query)
		}).
		Run()

	if err != nil {
		return err
	}

	fromLabel, err := stationLabel(from)
	if err != nil {
		return err
	}
	toLabel, err := stationLabel(to)
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✔") + fmt.Sprintf(" Connections for: %s ➜ %s", fromLabel, toLabel))

	if len(conns) == 0 {
		fmt.Println("No connections found")
		return nil
	}

	fmt.Println(RouteTable(newProjector().Routes(conns)))

	if req.ExportPath != "" {
		return exportRoutes(conns, req.ExportPath)
	}
	return nil
}

func exportRoutes(conns []mvg.Connection, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(conns, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	log.Debug().Str("path", path).Int("events", len(conns)).Msg("exported connections")
	fmt.Printf("Exported %d connections to %s\n", len(conns), path)
	return nil
}

// ShowDepartures resolves a station and prints its next departures.
func ShowDepartures(ctx context.Context, client *mvg.Client, query string, offsetMinutes int) error {
	var station mvg.Station
	var deps []mvg.Departure
	var err error

	_ = spinner.New().
		Title("Fetching...").
		Action(func() {
			station, err = client.ResolveStation(ctx, query)
			if err != nil {
				return
			}
			deps, err = client.FetchDepartures(ctx, station.GlobalID, offsetMinutes)
		}).
		Run()

	if err != nil {
		return err
	}

	label, err := stationLabel(station)
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✔") + fmt.Sprintf(" Departures for: %s", label))

	if len(deps) == 0 {
		fmt.Println("No departures found")
		return nil
	}

	fmt.Println(DepartureTable(newProjector().Departures(deps)))
	return nil
}

// ShowNotifications prints service notices whose lines match filter.
func ShowNotifications(ctx context.Context, client *mvg.Client, filter string) error {
	var notes []mvg.Notification
	var err error

	_ = spinner.New().
		Title("Fetching...").
		Action(func() {
			notes, err = client.FetchNotifications(ctx)
		}).
		Run()

	if err != nil {
		return err
	}

	rows := schedule.FilterNotifications(newProjector().Notifications(notes), filter)
	if len(rows) == 0 {
		fmt.Println("No notifications found")
		return nil
	}

	fmt.Println(NotificationTable(rows, terminalWidth()))
	return nil
}
