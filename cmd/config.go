package cmd

import (
	"fmt"

	"github.com/matkrin/mvg-cli/pkg/config"
	"github.com/matkrin/mvg-cli/pkg/tui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mvg configuration",
	Long:  "View or edit your local configuration settings (default station, accent color, route transport types).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setStation, _ := cmd.Flags().GetString("set-station")
		setColor, _ := cmd.Flags().GetString("set-color")
		show, _ := cmd.Flags().GetBool("show")

		if setColor != "" {
			if err := tui.ValidateHexColor(setColor); err != nil {
				return err
			}
			cfg.AccentColor = setColor
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Accent color saved as: %s\n", setColor)
		}

		if setStation != "" {
			station, err := tui.SetDefaultStation(cmd.Context(), cfg, setStation)
			if err != nil {
				return fmt.Errorf("could not set default station: %w", err)
			}
			fmt.Printf("✅ Default station saved as: %s, %s (ID: %s)\n", station.Name, station.Place, station.GlobalID)
		}

		if show {
			fmt.Print(tui.DescribeConfig(cfg))
		}

		if setColor != "" || setStation != "" || show {
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-station", "s", "", "Set the default station for departures")
	configCmd.Flags().StringP("set-color", "c", "", "Set the accent color as a hex code, e.g. #0065BD")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
