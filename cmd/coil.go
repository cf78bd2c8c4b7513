package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thermal-sim/thermal-sim/hx"
)

var (
	uaWater   float64 // Water-side UA
	uaAir     float64 // Air-side UA
	fraction  float64 // Active-area fraction
	mdotWater float64 // Water mass flow
	cpWater   float64 // Water specific heat
	tWaterIn  float64 // Water inlet temperature
	mdotAir   float64 // Air mass flow
	cpAir     float64 // Air specific heat
	tAirIn    float64 // Air inlet temperature
	regime    string  // Flow regime name
)

// coilCmd performs a single dry-coil effectiveness evaluation.
var coilCmd = &cobra.Command{
	Use:   "coil",
	Short: "Evaluate a dry-coil heat exchanger operating point",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		fr, err := hx.ParseRegime(regime)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		result, err := hx.Evaluate(hx.CoilInputs{
			UAWater:   uaWater,
			UAAir:     uaAir,
			Fraction:  fraction,
			Regime:    fr,
			MdotWater: mdotWater,
			CpWater:   cpWater,
			TWaterIn:  tWaterIn,
			MdotAir:   mdotAir,
			CpAir:     cpAir,
			TAirIn:    tAirIn,
		})
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		fmt.Println("=== Dry Coil ===")
		fmt.Printf("Overall UA        : %.2f W/K\n", result.UA)
		fmt.Printf("NTU               : %.4f\n", result.NTU)
		fmt.Printf("Capacity ratio Z  : %.4f\n", result.CapacityRatio)
		fmt.Printf("Effectiveness     : %.4f\n", result.Effectiveness)
		fmt.Printf("Heat flow         : %.1f W\n", result.QFlow)
		fmt.Printf("Water outlet      : %.2f K\n", result.TWaterOut)
		fmt.Printf("Air outlet        : %.2f K\n", result.TAirOut)
	},
}

func init() {
	coilCmd.Flags().Float64Var(&uaWater, "ua-water", 500, "Water-side UA (W/K)")
	coilCmd.Flags().Float64Var(&uaAir, "ua-air", 400, "Air-side UA (W/K)")
	coilCmd.Flags().Float64Var(&fraction, "fraction", 1.0, "Active-area fraction (0..1)")
	coilCmd.Flags().Float64Var(&mdotWater, "mdot-water", 1.0, "Water mass flow (kg/s)")
	coilCmd.Flags().Float64Var(&cpWater, "cp-water", 4186, "Water specific heat (J/kg/K)")
	coilCmd.Flags().Float64Var(&tWaterIn, "t-water-in", 333.15, "Water inlet temperature (K)")
	coilCmd.Flags().Float64Var(&mdotAir, "mdot-air", 2.0, "Air mass flow (kg/s)")
	coilCmd.Flags().Float64Var(&cpAir, "cp-air", 1006, "Air specific heat (J/kg/K)")
	coilCmd.Flags().Float64Var(&tAirIn, "t-air-in", 293.15, "Air inlet temperature (K)")
	coilCmd.Flags().StringVar(&regime, "regime", string(hx.Counterflow), "Flow regime (counterflow, parallel-flow, crossflow-unmixed, crossflow-cmax-mixed, crossflow-cmin-mixed, crossflow-both-mixed)")

	rootCmd.AddCommand(coilCmd)
}
