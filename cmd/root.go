package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/matkrin/mvg-cli/pkg/config"
	"github.com/matkrin/mvg-cli/pkg/mvg"
	"github.com/matkrin/mvg-cli/pkg/tui"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// appConfig is loaded once before any subcommand runs.
var appConfig = &config.AppConfig{}

var rootCmd = &cobra.Command{
	Use:   "mvg",
	Short: "Departures, routes and service notices for Munich public transport",
	Long: `mvg queries the MVG passenger information service for live departures,
connections between two stations and current service notifications.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogging(debug || os.Getenv("MVG_DEBUG") == "YES")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		appConfig = cfg
		tui.UseAccent(cfg.AccentColor)
		return nil
	},
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.WarnLevel)
	}
}

func newClient() *mvg.Client {
	return tui.NewClient(appConfig)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Log requests and decoding details to stderr")
}
