package cmd

import (
	"github.com/matkrin/mvg-cli/pkg/tui"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"n"},
	Short:   "Show all service notifications or those for a specific line",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		return tui.ShowNotifications(cmd.Context(), newClient(), filter)
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	notificationsCmd.Flags().StringP("filter", "f", "", "Only show notifications mentioning this line, e.g. U6")
}
