package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

var fuelLoads []float64

// fuelCmd sweeps lap time across a list of fuel loads.
var fuelCmd = &cobra.Command{
	Use:   "fuel",
	Short: "Compare lap times across fuel loads",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()

		if len(fuelLoads) == 0 {
			logrus.Fatalf("No fuel loads given; use --loads 30,60,90")
		}

		var configs []sim.CandidateConfig
		for _, load := range fuelLoads {
			configs = append(configs, sim.CandidateConfig{
				Label:    fmt.Sprintf("%s/%.0fkg", tire, load),
				Compound: tire,
				FuelKg:   load,
			})
		}

		entries, err := s.engine.CompareConfigurations(configs)
		if err != nil {
			logrus.Fatalf("Comparison error: %v", err)
		}
		printComparison(entries)
	},
}

func init() {
	addRunFlags(fuelCmd)
	fuelCmd.Flags().Float64SliceVar(&fuelLoads, "loads", nil, "Comma-separated fuel loads in kg")
	rootCmd.AddCommand(fuelCmd)
}
