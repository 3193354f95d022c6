package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/matkrin/mvg-cli/pkg/schedule"
	"golang.org/x/term"
)

const (
	fallbackWidth = 120
	linesColWidth = 10
	// detailsMargin is the space the lines and duration columns plus borders take.
	detailsMargin   = 50
	minDetailsWidth = 20
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)
var headerStyle = cellStyle.Bold(true)

// terminalWidth returns the width of stdout or a fallback when it is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// RouteTable renders connections as a table.
func RouteTable(rows []schedule.RouteRow) string {
	t := newTable("Time", "In", "Duration", "Lines", "Delay", "Info")
	for _, r := range rows {
		t.Row(r.Time, r.In, r.Duration, r.Lines, r.Delay, r.Info)
	}
	return t.Render()
}

// DepartureTable renders departures as a table.
func DepartureTable(rows []schedule.DepartureRow) string {
	t := newTable("Time", "In", "Line", "Destination", "Delay", "Info")
	for _, r := range rows {
		t.Row(r.Time, r.In, r.Line, r.Destination, r.Delay, r.Info)
	}
	return t.Render()
}

// NotificationTable renders notices with the lines column wrapped to a narrow
// width and the details column wrapped to what is left of width.
func NotificationTable(rows []schedule.NotificationRow, width int) string {
	detailsWidth := width - detailsMargin
	if detailsWidth < minDetailsWidth {
		detailsWidth = minDetailsWidth
	}

	t := newTable("Lines", "Duration", "Details").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			switch col {
			case 0:
				return style.Width(linesColWidth)
			case 2:
				return style.Width(detailsWidth)
			}
			return style
		})
	for _, r := range rows {
		t.Row(r.Lines, r.Duration, r.Details)
	}
	return t.Render()
}
