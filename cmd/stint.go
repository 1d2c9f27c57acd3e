package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

var (
	stintLaps int
	startLap  int
)

// stintCmd simulates several consecutive laps with evolving tire state.
var stintCmd = &cobra.Command{
	Use:   "stint",
	Short: "Simulate a multi-lap stint",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		results, final, err := s.engine.SimulateStint(s.vehicle, startLap, stintLaps)
		if err != nil {
			logrus.Fatalf("Simulation error: %v", err)
		}
		printStint(results, final)
	},
}

func init() {
	addRunFlags(stintCmd)
	stintCmd.Flags().IntVar(&stintLaps, "laps", 5, "Number of laps in the stint")
	stintCmd.Flags().IntVar(&startLap, "start-lap", 1, "First lap number of the stint")
	rootCmd.AddCommand(stintCmd)
}

func printStint(results []sim.LapResult, final sim.Vehicle) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("STINT SIMULATION — %d laps\n", len(results))
	fmt.Println(strings.Repeat("=", 60))

	best := results[0]
	for _, r := range results {
		if r.TotalTime < best.TotalTime {
			best = r
		}
		fmt.Printf("  Lap %2d: %s  (tire life %.0f%%, fuel %.1fkg)\n",
			r.Lap, sim.FormatLapTime(r.TotalTime),
			r.Stats.TireLifeRemaining*100, r.Stats.FuelRemainingKg)
	}

	fmt.Printf("\nBest lap: %d (%s)\n", best.Lap, sim.FormatLapTime(best.TotalTime))
	fmt.Printf("Final tire temperature: %.0fC after lap %d\n", final.TireTempC, final.CurrentLap)
}
