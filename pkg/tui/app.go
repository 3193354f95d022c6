package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/matkrin/mvg-cli/pkg/config"
	"github.com/matkrin/mvg-cli/pkg/maps"
	"github.com/matkrin/mvg-cli/pkg/mvg"
)

const defaultAccent = "39"

var (
	// These act as fallbacks until GetTheme() picks up the saved accent color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// GetTheme loads the user's saved accent color and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global accent so plain CLI output also receives the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// UseAccent applies a saved accent color to plain CLI output.
func UseAccent(color string) {
	if color != "" {
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
}

// NewClient returns an API client honoring the configured base URL.
func NewClient(cfg *config.AppConfig) *mvg.Client {
	return mvg.NewClient().WithBaseURL(cfg.BaseURL())
}

// RunTUI launches the main menu interactive form experience
func RunTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("🚉 Departures", "departures"),
					huh.NewOption("🧭 Routes", "routes"),
					huh.NewOption("⚠️ Notifications", "notifications"),
					huh.NewOption("🗺️ Network Maps", "map"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	client := NewClient(cfg)

	switch action {
	case "departures":
		return runDeparturesForm(ctx, client, cfg)
	case "routes":
		return runRoutesForm(ctx, client, cfg)
	case "notifications":
		return runNotificationsForm(ctx, client)
	case "map":
		return runMapForm()
	}
	return RunConfigTUI(ctx)
}

func validateClock(s string) error {
	if s == "" {
		return nil
	}
	_, err := ParseClock(s, time.Now())
	return err
}

func validateOffset(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("offset must be a non-negative number of minutes")
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("please enter a station")
	}
	return nil
}

func runDeparturesForm(ctx context.Context, client *mvg.Client, cfg *config.AppConfig) error {
	station := cfg.DefaultStation
	offset := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Station").
				Placeholder("e.g. Marienplatz").
				Value(&station).
				Validate(notEmpty),
			huh.NewInput().
				Title("Offset in minutes").
				Placeholder("0").
				Value(&offset).
				Validate(validateOffset),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	minutes := 0
	if offset != "" {
		minutes, _ = strconv.Atoi(offset)
	}
	return ShowDepartures(ctx, client, station, minutes)
}

func runRoutesForm(ctx context.Context, client *mvg.Client, cfg *config.AppConfig) error {
	req := RoutesRequest{From: cfg.DefaultStation, TransportTypes: cfg.RouteTransportTypes()}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("From").Value(&req.From).Validate(notEmpty),
			huh.NewInput().Title("To").Value(&req.To).Validate(notEmpty),
			huh.NewInput().
				Title("Time").
				Description("HH:MM, leave empty for now").
				Value(&req.Time).
				Validate(validateClock),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Is this the arrival time?").
				Value(&req.Arrival),
		).WithHideFunc(func() bool { return req.Time == "" }),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return ShowRoutes(ctx, client, req)
}

func runNotificationsForm(ctx context.Context, client *mvg.Client) error {
	var filter string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Filter by line").
				Description("Leave empty to show every notification.").
				Placeholder("e.g. U6").
				Value(&filter),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return ShowNotifications(ctx, client, filter)
}

func runMapForm() error {
	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which maps do you want to open?").
				Options(
					huh.NewOption("Regional network", maps.Region.Name).Selected(true),
					huh.NewOption("Tram network", maps.Tram.Name),
					huh.NewOption("Night lines", maps.Night.Name),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	var region, tram, night bool
	for _, name := range selected {
		switch name {
		case maps.Region.Name:
			region = true
		case maps.Tram.Name:
			tram = true
		case maps.Night.Name:
			night = true
		}
	}
	return maps.Open(maps.Select(region, tram, night))
}
