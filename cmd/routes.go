package cmd

import (
	"github.com/matkrin/mvg-cli/pkg/tui"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:     "routes FROM TO",
	Aliases: []string{"r"},
	Short:   "Show connections between two stations",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeFlag, _ := cmd.Flags().GetString("time")
		arrival, _ := cmd.Flags().GetBool("arrival")
		export, _ := cmd.Flags().GetString("export")

		types := appConfig.RouteTransportTypes()
		for flag, enabled := range map[string]*bool{
			"no-ubahn": &types.Underground,
			"no-bus":   &types.Bus,
			"no-tram":  &types.Tram,
			"no-sbahn": &types.Suburban,
			"no-taxi":  &types.TaxiOnCall,
		} {
			if off, _ := cmd.Flags().GetBool(flag); off {
				*enabled = false
			}
		}

		return tui.ShowRoutes(cmd.Context(), newClient(), tui.RoutesRequest{
			From:           args[0],
			To:             args[1],
			Time:           timeFlag,
			Arrival:        arrival,
			TransportTypes: types,
			ExportPath:     export,
		})
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().StringP("time", "t", "", "Departure time in HH:MM, or arrival time with --arrival")
	routesCmd.Flags().BoolP("arrival", "a", false, "Treat --time as the arrival time")
	routesCmd.Flags().StringP("export", "e", "", "Also write the connections to an .ics calendar file")
	routesCmd.Flags().Bool("no-ubahn", false, "Exclude U-Bahn")
	routesCmd.Flags().Bool("no-bus", false, "Exclude buses")
	routesCmd.Flags().Bool("no-tram", false, "Exclude trams")
	routesCmd.Flags().Bool("no-sbahn", false, "Exclude S-Bahn")
	routesCmd.Flags().Bool("no-taxi", false, "Exclude on-call taxis")
}
