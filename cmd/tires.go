package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apexsim/apexsim/sim"
)

// tiresCmd compares every catalog compound at the flagged fuel load.
var tiresCmd = &cobra.Command{
	Use:   "tires",
	Short: "Compare all tire compounds at the same fuel load",
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession()

		var configs []sim.CandidateConfig
		for _, compound := range s.catalog.CompoundNames() {
			configs = append(configs, sim.CandidateConfig{
				Label:    compound,
				Compound: compound,
				FuelKg:   fuelKg,
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
	addRunFlags(tiresCmd)
	rootCmd.AddCommand(tiresCmd)
}
