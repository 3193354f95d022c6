package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/matkrin/mvg-cli/pkg/config"
	"github.com/matkrin/mvg-cli/pkg/mvg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// routeTransportTypes are the products a route query can be restricted to.
var routeTransportTypes = mvg.AllRouteTransportTypes().List()

// TransportTypeName turns a wire product name such as "REGIONAL_BUS" into "Regional Bus".
func TransportTypeName(t mvg.TransportType) string {
	return cases.Title(language.German).String(strings.ReplaceAll(string(t), "_", " "))
}

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI(ctx context.Context) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Station", "station"),
						huh.NewOption("Set Route Transport Types", "transport"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "station":
			err = runSetStationTUI(ctx, cfg)
		case "transport":
			err = runSetTransportTypesTUI(cfg)
		case "view":
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig renders the configuration for display.
func DescribeConfig(cfg *config.AppConfig) string {
	var sb strings.Builder
	sb.WriteString(accentStyle.Render("--- Current Configuration (~/.mvg-cli.json) ---") + "\n")

	station := cfg.DefaultStation
	if station == "" {
		station = "Not set"
	}
	fmt.Fprintf(&sb, "Default Station: %s\n", station)

	var enabled []string
	for _, t := range cfg.RouteTransportTypes().List() {
		enabled = append(enabled, TransportTypeName(t))
	}
	if len(enabled) == 0 {
		enabled = []string{"None"}
	}
	fmt.Fprintf(&sb, "Route Transport Types: %s\n", strings.Join(enabled, ", "))

	accent := cfg.AccentColor
	if accent == "" {
		accent = defaultAccent
	}
	fmt.Fprintf(&sb, "Accent Color: %s\n", accent)

	if u := cfg.BaseURL(); u != "" {
		fmt.Fprintf(&sb, "API URL: %s\n", u)
	}
	return sb.String()
}

// SetDefaultStation resolves query to a station and saves its name as the default.
func SetDefaultStation(ctx context.Context, cfg *config.AppConfig, query string) (mvg.Station, error) {
	client := NewClient(cfg)

	var station mvg.Station
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching for '%s'...", query)).
		Action(func() {
			station, err = client.ResolveStation(ctx, query)
		}).
		Run()

	if err != nil {
		return mvg.Station{}, err
	}

	cfg.DefaultStation = station.Name
	if err := config.Save(cfg); err != nil {
		return mvg.Station{}, err
	}
	return station, nil
}

func runSetStationTUI(ctx context.Context, cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter your usual station").
				Description("Used by departures and routes when no station is given.").
				Placeholder("e.g. Marienplatz").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No station provided.")
		return nil
	}

	station, err := SetDefaultStation(ctx, cfg, input)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", err)))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default station saved: %s, %s\n", station.Name, station.Place)))
	return nil
}

func runSetTransportTypesTUI(cfg *config.AppConfig) error {
	current := cfg.RouteTransportTypes().List()

	var options []huh.Option[string]
	for _, t := range routeTransportTypes {
		options = append(options, huh.NewOption(TransportTypeName(t), string(t)).Selected(slices.Contains(current, t)))
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which transport types may routes use?").
				Description("Space = toggle, Enter = confirm.").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DisabledTransportTypes = nil
	for _, t := range routeTransportTypes {
		if !slices.Contains(selected, string(t)) {
			cfg.DisabledTransportTypes = append(cfg.DisabledTransportTypes, string(t))
		}
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Routes will use %d transport types.\n", len(selected))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated color or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s U-Bahn Blue", colorBlock("39")), "39"),
					huh.NewOption(fmt.Sprintf("%s S-Bahn Green", colorBlock("34")), "34"),
					huh.NewOption(fmt.Sprintf("%s Tram Red", colorBlock("160")), "160"),
					huh.NewOption(fmt.Sprintf("%s Night Yellow", colorBlock("226")), "226"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #0065BD").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateHexColor),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}

// ValidateHexColor accepts colors of the form #RRGGBB.
func ValidateHexColor(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range str[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("must be a valid 6-character hex code starting with #")
		}
	}
	return nil
}
