package cmd

import (
	"github.com/matkrin/mvg-cli/pkg/maps"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:     "map",
	Aliases: []string{"m"},
	Short:   "Open network maps in the browser",
	Long:    "Open network maps in the browser. Without flags the regional map is opened.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		region, _ := cmd.Flags().GetBool("region")
		tram, _ := cmd.Flags().GetBool("tram")
		night, _ := cmd.Flags().GetBool("night")
		return maps.Open(maps.Select(region, tram, night))
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().BoolP("region", "r", false, "Open the regional network map")
	mapCmd.Flags().BoolP("tram", "t", false, "Open the tram network map")
	mapCmd.Flags().BoolP("night", "n", false, "Open the night lines map")
}
