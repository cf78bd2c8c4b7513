package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thermal-sim/thermal-sim/server"
)

var (
	serveAddr         string // Listen address
	serveScenarioPath string // Scenario streamed to clients
)

// serveCmd streams live simulation frames over websocket.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve live tank simulation frames over websocket",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sc, err := loadScenario(serveScenarioPath)
		if err != nil {
			logrus.Fatalf("Loading scenario: %v", err)
		}
		if err := server.ListenAndServe(serveAddr, sc); err != nil {
			logrus.Fatalf("Server: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveScenarioPath, "scenario", "", "YAML scenario file (built-in default when empty)")

	rootCmd.AddCommand(serveCmd)
}
