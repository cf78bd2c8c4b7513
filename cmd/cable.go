package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thermal-sim/thermal-sim/cable"
)

var (
	voltageLevel string  // Voltage level for default geometry
	gmd          float64 // Explicit geometric mean distance
	gmr          float64 // Explicit geometric mean radius
	frequency    float64 // Grid frequency
)

// cableCmd reports per-length cable inductance and reactance.
var cableCmd = &cobra.Command{
	Use:   "cable",
	Short: "Compute per-length cable inductance and reactance",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		var geom cable.Geometry
		if gmd > 0 || gmr > 0 {
			geom = cable.Geometry{GMD: gmd, GMR: gmr}
		} else {
			level, err := cable.ParseVoltageLevel(voltageLevel)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			geom, err = cable.DefaultGeometry(level)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		l, err := geom.InductancePerMeter()
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		x, err := geom.ReactancePerMeter(frequency)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		fmt.Println("=== Cable ===")
		fmt.Printf("GMD / GMR     : %.4g m / %.4g m\n", geom.GMD, geom.GMR)
		fmt.Printf("Inductance    : %.4g mH/km\n", l*1e6)
		fmt.Printf("Reactance     : %.4g Ω/km at %g Hz\n", x*1e3, frequency)
	},
}

func init() {
	cableCmd.Flags().StringVar(&voltageLevel, "level", "medium", "Voltage level (low, medium, high)")
	cableCmd.Flags().Float64Var(&gmd, "gmd", 0, "Geometric mean distance (m); overrides --level together with --gmr")
	cableCmd.Flags().Float64Var(&gmr, "gmr", 0, "Geometric mean radius (m)")
	cableCmd.Flags().Float64Var(&frequency, "frequency", 50, "Grid frequency (Hz)")

	rootCmd.AddCommand(cableCmd)
}
