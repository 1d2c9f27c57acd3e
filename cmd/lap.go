package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

var lapNumber int

// lapCmd simulates a single lap and prints the full breakdown.
var lapCmd = &cobra.Command{
	Use:   "lap",
	Short: "Simulate a single lap",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()
		result, _, err := s.engine.SimulateLap(s.vehicle, lapNumber)
		if err != nil {
			logrus.Fatalf("Simulation error: %v", err)
		}
		printLapResult(result)
	},
}

func init() {
	addRunFlags(lapCmd)
	lapCmd.Flags().IntVar(&lapNumber, "lap", 1, "Lap number (affects tire degradation)")
	rootCmd.AddCommand(lapCmd)
}

func printLapResult(result sim.LapResult) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("LAP %d — %s\n", result.Lap, result.Conditions.Circuit)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total lap time: %s\n\n", sim.FormatLapTime(result.TotalTime))

	fmt.Println("Segment breakdown:")
	for _, seg := range result.Segments {
		drs := ""
		if seg.HasDRS {
			drs = " (DRS)"
		}
		fmt.Printf("  S%d: %s%s\n", seg.Segment, sim.FormatSegmentTime(seg.Time), drs)
	}

	fmt.Println("\nConditions:")
	fmt.Printf("  Weather: %s | Track: %s | Tires: %s | Fuel: %.0fkg\n",
		result.Conditions.Weather, result.Conditions.TrackCondition,
		result.Conditions.Compound, result.Conditions.FuelKg)

	stats := result.Stats
	fmt.Println("\nLap statistics:")
	fmt.Printf("  Fastest segment:  S%d\n", stats.FastestSegment)
	fmt.Printf("  Slowest segment:  S%d\n", stats.SlowestSegment)
	fmt.Printf("  Theoretical best: %s\n", sim.FormatLapTime(stats.TheoreticalBest))
	fmt.Printf("  Time loss:        +%.3fs\n", stats.DeltaToTheoretical)
	fmt.Printf("  Tire life:        %.1f%%\n", stats.TireLifeRemaining*100)
	fmt.Printf("  Fuel remaining:   %.1fkg\n", stats.FuelRemainingKg)

	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
