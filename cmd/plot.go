package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/thermal-sim/thermal-sim/tank"
)

var (
	plotScenarioPath string // Scenario to simulate before plotting
	plotOutput       string // Output image path
)

// plotCmd runs a scenario and renders the segment temperature histories.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Run a scenario and plot segment temperatures over time",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sc, err := loadScenario(plotScenarioPath)
		if err != nil {
			logrus.Fatalf("Loading scenario: %v", err)
		}
		sim, err := tank.NewSimulator(sc)
		if err != nil {
			logrus.Fatalf("Building simulator: %v", err)
		}
		if err := sim.Run(); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		p := plot.New()
		p.Title.Text = "Stratified tank segment temperatures"
		p.X.Label.Text = "time (s)"
		p.Y.Label.Text = "temperature (K)"

		// Plot top, middle and bottom segments; the full stack would be
		// unreadable for fine segmentations.
		n := sim.Tank.StateDim()
		lines := []any{}
		for _, seg := range plotSegments(n) {
			xys := make(plotter.XYs, sim.Trace.Len())
			for i, rec := range sim.Trace.Steps {
				xys[i].X = rec.Time
				xys[i].Y = rec.SegmentTemps[seg]
			}
			lines = append(lines, fmt.Sprintf("segment %d", seg), xys)
		}
		if err := plotutil.AddLinePoints(p, lines...); err != nil {
			logrus.Fatalf("Plotting: %v", err)
		}
		if err := p.Save(8*vg.Inch, 4*vg.Inch, plotOutput); err != nil {
			logrus.Fatalf("Saving plot: %v", err)
		}
		logrus.Infof("Wrote %s", plotOutput)
	},
}

// plotSegments picks the top, middle and bottom segment indices, collapsing
// duplicates for coarse segmentations.
func plotSegments(n int) []int {
	segs := []int{0}
	for _, seg := range []int{n / 2, n - 1} {
		if seg != segs[len(segs)-1] {
			segs = append(segs, seg)
		}
	}
	return segs
}

func init() {
	plotCmd.Flags().StringVar(&plotScenarioPath, "scenario", "", "YAML scenario file (built-in default when empty)")
	plotCmd.Flags().StringVar(&plotOutput, "out", "tank.png", "Output image path (.png, .svg, .pdf)")

	rootCmd.AddCommand(plotCmd)
}
