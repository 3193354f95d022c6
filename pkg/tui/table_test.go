package tui

import (
	"strings"
	"testing"

	"github.com/matkrin/mvg-cli/pkg/schedule"
	"github.com/stretchr/testify/assert"
)

func TestRouteTable(t *testing.T) {
	out := RouteTable([]schedule.RouteRow{
		{Time: "08:00 - 08:25", In: "10", Duration: "25", Lines: "S8, U7", Delay: "-", Info: "Bauarbeiten\nUmleitung"},
	})

	assert.True(t, strings.HasPrefix(out, "╭"), "expected a rounded border")
	for _, want := range []string{"Time", "In", "Duration", "Lines", "Delay", "Info", "08:00 - 08:25", "S8, U7", "Bauarbeiten", "Umleitung"} {
		assert.Contains(t, out, want)
	}
}

func TestDepartureTable(t *testing.T) {
	out := DepartureTable([]schedule.DepartureRow{
		{Time: "08:05", In: "5", Line: "U3", Destination: "Moosach", Delay: "-"},
		{Time: "08:12", In: "12", Line: "N40", Destination: "Klinikum Großhadern", Delay: "5"},
	})

	for _, want := range []string{"Destination", "Moosach", "Klinikum Großhadern", "N40"} {
		assert.Contains(t, out, want)
	}
}

func TestNotificationTable_WrapsDetails(t *testing.T) {
	long := "Wegen Bauarbeiten verkehren zwischen Odeonsplatz und Münchner Freiheit keine Züge der Linien U3 und U6"

	out := NotificationTable([]schedule.NotificationRow{
		{Lines: "U3, U6", Duration: "24.02.2026 - 02.03.2026", Details: long},
	}, 80)

	assert.Contains(t, out, "Wegen")
	assert.Contains(t, out, "Odeonsplatz")
	assert.NotContains(t, out, long, "details must be wrapped")
}

func TestNotificationTable_NarrowTerminal(t *testing.T) {
	out := NotificationTable([]schedule.NotificationRow{
		{Lines: "S8", Duration: "01.02.2026 - ", Details: "Hinweis"},
	}, 10)

	assert.Contains(t, out, "Hinweis")
}
