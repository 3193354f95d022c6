package cmd

import (
	"fmt"

	"github.com/matkrin/mvg-cli/pkg/tui"
	"github.com/spf13/cobra"
)

var departuresCmd = &cobra.Command{
	Use:     "departures [STATION]",
	Aliases: []string{"d"},
	Short:   "Show the next departures at a station",
	Long:    "Show the next departures at a station. Without STATION the default station from the config is used.",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetInt("offset")
		if offset < 0 {
			return fmt.Errorf("--offset must not be negative")
		}

		station := appConfig.DefaultStation
		if len(args) == 1 {
			station = args[0]
		}
		if station == "" {
			return fmt.Errorf("no station given. Pass one or run 'mvg config --set-station \"Marienplatz\"' first")
		}

		return tui.ShowDepartures(cmd.Context(), newClient(), station, offset)
	},
}

func init() {
	rootCmd.AddCommand(departuresCmd)
	departuresCmd.Flags().IntP("offset", "o", 0, "Start the departure window this many minutes from now")
}
