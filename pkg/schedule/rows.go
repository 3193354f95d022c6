// Package schedule turns decoded transit data into display rows.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matkrin/mvg-cli/pkg/badge"
	"github.com/matkrin/mvg-cli/pkg/mvg"
)

const (
	clockLayout = "15:04"
	dateLayout  = "02.01.2006"
)

// RouteRow is one connection as shown in the routes table.
type RouteRow struct {
	Time     string
	In       string
	Duration string
	Lines    string
	Delay    string
	Info     string
}

// DepartureRow is one departure as shown in the departures table.
type DepartureRow struct {
	Time        string
	In          string
	Line        string
	Destination string
	Delay       string
	Info        string
}

// NotificationRow is one service notice as shown in the notifications table.
type NotificationRow struct {
	Lines    string
	Duration string
	Details  string
}

// Projector derives display rows. It performs no I/O.
type Projector struct {
	badges   *badge.Renderer
	emphasis lipgloss.Style
	now      func() time.Time
}

// NewProjector returns a Projector that uses b for line badges and r for
// emphasized text.
func NewProjector(b *badge.Renderer, r *lipgloss.Renderer) *Projector {
	return &Projector{
		badges:   b,
		emphasis: r.NewStyle().Bold(true),
		now:      time.Now,
	}
}

// WithClock replaces the clock used for "in minutes" columns.
func (p *Projector) WithClock(now func() time.Time) *Projector {
	p.now = now
	return p
}

// DelayLabel renders a delay in minutes. Absent and zero delays both render as "-".
func DelayLabel(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return "-"
	}
	return strconv.Itoa(*minutes)
}

// Route projects a connection. The origin is the first part's departure stop
// and the destination is the last part's arrival stop.
func (p *Projector) Route(c mvg.Connection) RouteRow {
	origin := c.Origin()
	destination := c.Destination()

	labels := make([]string, len(c.Parts))
	var messages []string
	for i, part := range c.Parts {
		labels[i] = part.Line.Label
		messages = append(messages, part.Messages...)
	}

	return RouteRow{
		Time: fmt.Sprintf("%s - %s",
			origin.PlannedDeparture.Format(clockLayout),
			destination.PlannedDeparture.Format(clockLayout)),
		In:       strconv.Itoa(mvg.MinutesUntil(origin.PlannedDeparture, p.now())),
		Duration: strconv.Itoa(mvg.MinutesBetween(origin.PlannedDeparture, destination.PlannedDeparture)),
		Lines:    p.badges.RenderAll(labels),
		Delay:    DelayLabel(origin.DepartureDelayMinutes),
		Info:     strings.Join(messages, "\n"),
	}
}

// Routes projects every connection in order.
func (p *Projector) Routes(conns []mvg.Connection) []RouteRow {
	rows := make([]RouteRow, len(conns))
	for i, c := range conns {
		rows[i] = p.Route(c)
	}
	return rows
}

// Departure projects a departure.
func (p *Projector) Departure(d mvg.Departure) DepartureRow {
	return DepartureRow{
		Time:        d.PlannedTime.Format(clockLayout),
		In:          strconv.Itoa(mvg.MinutesUntil(d.PlannedTime, p.now())),
		Line:        p.badges.Render(d.Label),
		Destination: d.Destination,
		Delay:       DelayLabel(d.DelayMinutes),
		Info:        strings.Join(d.Messages, "\n"),
	}
}

// Departures projects every departure in order.
func (p *Projector) Departures(deps []mvg.Departure) []DepartureRow {
	rows := make([]DepartureRow, len(deps))
	for i, d := range deps {
		rows[i] = p.Departure(d)
	}
	return rows
}

// Notification projects a service notice. Only the first incident window is
// shown even when the notice lists several.
func (p *Projector) Notification(n mvg.Notification) NotificationRow {
	labels := make([]string, len(n.Lines))
	for i, l := range n.Lines {
		labels[i] = l.Label
	}

	window := n.Window()
	until := ""
	if window.To != nil {
		until = window.To.Format(dateLayout)
	}

	title := p.emphasis.Render(HTMLToText(n.Title))

	return NotificationRow{
		Lines:    p.badges.RenderAll(labels),
		Duration: fmt.Sprintf("%s - %s", window.From.Format(dateLayout), until),
		Details:  title + "\n" + HTMLToText(n.Description),
	}
}

// Notifications projects every notice in order.
func (p *Projector) Notifications(notes []mvg.Notification) []NotificationRow {
	rows := make([]NotificationRow, len(notes))
	for i, n := range notes {
		rows[i] = p.Notification(n)
	}
	return rows
}
