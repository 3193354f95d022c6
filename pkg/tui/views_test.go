package tui

import (
	"context"
	"testing"
	"time"

	"github.com/matkrin/mvg-cli/pkg/mvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	now := time.Date(2026, 2, 25, 22, 15, 42, 0, loc)

	got, err := ParseClock("08:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 25, 8, 30, 0, 0, loc), got)

	for _, bad := range []string{"", "8.30", "25:00", "08:61", "morning"} {
		_, err := ParseClock(bad, now)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestStationLabel(t *testing.T) {
	label, err := stationLabel(mvg.Station{GlobalID: "de:09162:2", Name: "Marienplatz", Place: "München"})
	require.NoError(t, err)
	assert.Contains(t, label, "Marienplatz")
	assert.Contains(t, label, "München")

	_, err = stationLabel(mvg.Address{Name: "Marienplatz 8"})
	assert.ErrorIs(t, err, mvg.ErrNoStationName)

	_, err = stationLabel(mvg.Station{GlobalID: "de:09162:2"})
	assert.ErrorIs(t, err, mvg.ErrNoStationName)
}

func TestShowRoutes_ArrivalRequiresTime(t *testing.T) {
	err := ShowRoutes(context.Background(), mvg.NewClient(), RoutesRequest{From: "a", To: "b", Arrival: true})
	assert.ErrorContains(t, err, "--time")
}

func TestShowRoutes_InvalidTime(t *testing.T) {
	err := ShowRoutes(context.Background(), mvg.NewClient(), RoutesRequest{From: "a", To: "b", Time: "noon"})
	assert.ErrorContains(t, err, "HH:MM")
}
