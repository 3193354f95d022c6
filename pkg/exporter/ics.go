package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matkrin/mvg-cli/pkg/mvg"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes one calendar event per connection to w. An event spans
// the origin's planned departure to the destination's planned time.
func GenerateICS(conns []mvg.Connection, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//mvg-cli//routes//EN")

	now := time.Now()

	for i, c := range conns {
		origin := c.Origin()
		destination := c.Destination()

		labels := make([]string, len(c.Parts))
		for j, part := range c.Parts {
			labels[j] = part.Line.Label
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d@mvg-cli", origin.PlannedDeparture.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(origin.PlannedDeparture)
		event.SetEndAt(destination.PlannedDeparture)
		event.SetSummary(fmt.Sprintf("%s ➜ %s (%s)", origin.Name, destination.Name, strings.Join(labels, ", ")))
		event.SetLocation(fmt.Sprintf("%s, %s", origin.Name, origin.Place))
		event.SetDescription(describe(c))
	}

	return cal.SerializeTo(w)
}

// describe lists every leg with its rider messages.
func describe(c mvg.Connection) string {
	var sb strings.Builder
	for i, part := range c.Parts {
		fmt.Fprintf(&sb, "%d. %s %s: %s -> %s\n",
			i+1,
			part.From.PlannedDeparture.Format("15:04"),
			part.Line.Label,
			part.From.Name,
			part.To.Name)
		for _, msg := range part.Messages {
			fmt.Fprintf(&sb, "   %s\n", msg)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
